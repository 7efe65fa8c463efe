package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		Headless bool   `json:"headless"`
		AutoOpen bool   `json:"auto_open"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Vault struct {
			Dir           string `json:"dir"`
			StagingFolder string `json:"staging_folder"`
		} `json:"vault,omitempty"`

		Keyring struct {
			ServiceName  string `json:"service"`
			FileDir      string `json:"file_dir"`
			FilePassword string `json:"file_password"`
		} `json:"keyring,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		MinDelay Duration `json:"min_delay"`
		MaxDelay Duration `json:"max_delay"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			Headless: jsonCfg.App.Headless,
			AutoOpen: jsonCfg.App.AutoOpen,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Vault: Vault{
				Dir:           jsonCfg.Storage.Vault.Dir,
				StagingFolder: jsonCfg.Storage.Vault.StagingFolder,
			},
			Keyring: Keyring{
				ServiceName:  jsonCfg.Storage.Keyring.ServiceName,
				FileDir:      jsonCfg.Storage.Keyring.FileDir,
				FilePassword: jsonCfg.Storage.Keyring.FilePassword,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			MinDelay: time.Duration(jsonCfg.Workers.MinDelay),
			MaxDelay: time.Duration(jsonCfg.Workers.MaxDelay),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
