package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/notify"
	"github.com/MKhiriev/go-mail-notes/internal/service"
	"github.com/MKhiriev/go-mail-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal status panel. It also acts as a notifier: every
// notification is forwarded to the running program as a message.
type TUI struct {
	ctx     context.Context
	program *tea.Program
	logger  *logger.Logger
}

// New creates the panel. Terminal focus reports drive foreground; regaining
// focus triggers an immediate poll.
func New(
	ctx context.Context,
	services *service.ClientServices,
	foreground *notify.AtomicForeground,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *TUI {
	m := newModel(ctx, services, foreground, buildInfo)
	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	return &TUI{ctx: ctx, program: program, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled. It implements
// workers.Worker.
func (t *TUI) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, t.program.Quit)
	defer stop()

	_, err := t.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && (ctx.Err() != nil || t.ctx.Err() != nil) {
		err = nil
	}
	t.logger.Debug().Err(err).Str("func", "TUI.Run").Msg("status panel closed")
	return err
}

func (t *TUI) Notify(event models.Event) {
	t.program.Send(eventMsg{event: event})
}

func (t *TUI) PromptFirstRun(creds models.Credentials) {
	t.program.Send(firstRunMsg{creds: creds})
}

func (t *TUI) PromptPaywall() {
	t.program.Send(paywallMsg{})
}

func (t *TUI) Publish(snapshot models.Snapshot) {
	t.program.Send(snapshotMsg{snapshot: snapshot})
}
