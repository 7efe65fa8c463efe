package vault

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/MKhiriev/go-mail-notes/internal/logger"
)

// commandFunc builds the command used to open a file.
type commandFunc func(name string, args ...string) *exec.Cmd

// ExecOpener opens vault files with the platform's default application.
type ExecOpener struct {
	vault   *Vault
	goos    string
	command commandFunc
	logger  *logger.Logger
}

func NewExecOpener(v *Vault, log *logger.Logger) *ExecOpener {
	return &ExecOpener{vault: v, goos: runtime.GOOS, command: exec.Command, logger: log}
}

// Open starts the platform opener for the vault-relative path p and returns
// without waiting for it to exit.
func (o *ExecOpener) Open(p string) error {
	p, err := Clean(p)
	if err != nil {
		return err
	}

	name, args, err := openCommand(o.goos, o.vault.Abs(p))
	if err != nil {
		return err
	}

	cmd := o.command(name, args...)
	if err = cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}

	o.logger.Debug().
		Str("func", "ExecOpener.Open").
		Str("path", p).
		Msg("opened imported note")

	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrNoOpener, goos)
	}
}
