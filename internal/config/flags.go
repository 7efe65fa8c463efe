package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a remote service address
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d state database path
//	-vault notes vault directory
//	-staging staging folder inside the vault
//	-keyring-dir file keyring directory
//	-min-delay polling delay after success (e.g., "30s")
//	-max-delay polling delay cap (e.g., "30m")
//	-headless run without the status panel
//	-auto-open open newly imported notes
//	-log log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		requestTimeout time.Duration
		databaseDSN    string
		vaultDir       string
		stagingFolder  string
		keyringDir     string
		minDelay       time.Duration
		maxDelay       time.Duration
		headless       bool
		autoOpen       bool
		logFile        string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("go-mail-notes", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Remote service address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "State database path")
	fs.StringVar(&vaultDir, "vault", "", "Notes vault directory")
	fs.StringVar(&stagingFolder, "staging", "", "Staging folder inside the vault")
	fs.StringVar(&keyringDir, "keyring-dir", "", "File keyring directory")
	fs.DurationVar(&minDelay, "min-delay", 0, "Polling delay after a successful sync")
	fs.DurationVar(&maxDelay, "max-delay", 0, "Maximum polling delay after failures")
	fs.BoolVar(&headless, "headless", false, "Run without the status panel")
	fs.BoolVar(&autoOpen, "auto-open", false, "Open newly imported notes")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Headless: headless,
			AutoOpen: autoOpen,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Vault:   Vault{Dir: vaultDir, StagingFolder: stagingFolder},
			Keyring: Keyring{FileDir: keyringDir},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			MinDelay: minDelay,
			MaxDelay: maxDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
