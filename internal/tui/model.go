package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mail-notes/internal/notify"
	"github.com/MKhiriev/go-mail-notes/internal/service"
	"github.com/MKhiriev/go-mail-notes/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayFirstRun
	overlayPaywall
	overlayConfirmRotate
	overlayBuildInfo
)

const (
	maxToasts    = 5
	statusTTL    = 3 * time.Second
	tickInterval = time.Second
)

type model struct {
	ctx          context.Context
	engine       service.ClientSyncEngine
	job          service.ClientSyncJob
	registration service.ClientRegistrationService
	foreground   *notify.AtomicForeground
	buildInfo    models.AppBuildInfo

	writeClipboard func(string) error
	now            func() time.Time

	help          help.Model
	snapshot      models.Snapshot
	toasts        []models.Event
	overlay       overlay
	firstRunAlias string
	status        string
	statusErr     bool
	rotating      bool
}

func newModel(
	ctx context.Context,
	services *service.ClientServices,
	foreground *notify.AtomicForeground,
	buildInfo models.AppBuildInfo,
) model {
	return model{
		ctx:            ctx,
		engine:         services.SyncEngine,
		job:            services.SyncJob,
		registration:   services.Registration,
		foreground:     foreground,
		buildInfo:      buildInfo,
		writeClipboard: clipboard.WriteAll,
		now:            time.Now,
		help:           help.New(),
	}
}

func (m model) Init() tea.Cmd {
	engine := m.engine
	return tea.Batch(
		func() tea.Msg { return snapshotMsg{snapshot: engine.Snapshot()} },
		tickCmd(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.FocusMsg:
		if m.foreground.Set(true) {
			m.job.Trigger()
		}
		return m, nil

	case tea.BlurMsg:
		m.foreground.Set(false)
		return m, nil

	case snapshotMsg:
		m.snapshot = msg.snapshot
		return m, nil

	case eventMsg:
		m.toasts = append(m.toasts, msg.event)
		if len(m.toasts) > maxToasts {
			m.toasts = m.toasts[len(m.toasts)-maxToasts:]
		}
		return m, nil

	case firstRunMsg:
		m.firstRunAlias = msg.creds.Alias
		m.snapshot.Alias = msg.creds.Alias
		m.overlay = overlayFirstRun
		return m, nil

	case paywallMsg:
		m.overlay = overlayPaywall
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.setStatus(fmt.Sprintf("Could not copy: %v", msg.err), true)
		}
		return m.setStatus("Address copied to clipboard", false)

	case autoOpenDoneMsg:
		if msg.err != nil {
			return m.setStatus(fmt.Sprintf("Could not change auto-open: %v", msg.err), true)
		}
		m.snapshot.AutoOpen = msg.enabled
		return m.setStatus("Auto-open "+onOff(msg.enabled), false)

	case rotateDoneMsg:
		m.rotating = false
		if msg.err != nil {
			return m.setStatus(service.UserMessage(msg.err), true)
		}
		m.engine.SetAlias(msg.creds.Alias)
		m.snapshot.Alias = msg.creds.Alias
		return m.setStatus("New address: "+msg.creds.Alias, false)

	case tickMsg:
		return m, tickCmd()

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) && (m.overlay == overlayNone || msg.String() == "ctrl+c") {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayNone:
	case overlayConfirmRotate:
		switch {
		case key.Matches(msg, keys.yes):
			m.overlay = overlayNone
			m.rotating = true
			return m, m.cmdRotate()
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
		}
		return m, nil
	default:
		if m.overlay == overlayFirstRun && key.Matches(msg, keys.copyAlias) {
			return m, m.cmdCopy(m.firstRunAlias)
		}
		if key.Matches(msg, keys.close) || key.Matches(msg, keys.quit) {
			m.overlay = overlayNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		m.job.Trigger()
		return m.setStatus("Sync requested", false)

	case key.Matches(msg, keys.copyAlias):
		if m.snapshot.Alias == "" {
			return m.setStatus("No import address yet", true)
		}
		return m, m.cmdCopy(m.snapshot.Alias)

	case key.Matches(msg, keys.autoOpen):
		return m, m.cmdSetAutoOpen(!m.snapshot.AutoOpen)

	case key.Matches(msg, keys.rotate):
		if !m.rotating {
			m.overlay = overlayConfirmRotate
		}
		return m, nil

	case key.Matches(msg, keys.buildInfo):
		m.overlay = overlayBuildInfo
		return m, nil
	}

	return m, nil
}

func (m model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusErr = isErr
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m model) cmdCopy(text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m model) cmdSetAutoOpen(enabled bool) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		return autoOpenDoneMsg{enabled: enabled, err: engine.SetAutoOpen(ctx, enabled)}
	}
}

func (m model) cmdRotate() tea.Cmd {
	ctx, registration := m.ctx, m.registration
	return func() tea.Msg {
		creds, err := registration.Rotate(ctx)
		return rotateDoneMsg{creds: creds, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
