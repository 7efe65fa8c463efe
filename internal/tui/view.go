package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-mail-notes/models"
)

func (m model) View() string {
	switch m.overlay {
	case overlayFirstRun:
		return appStyle.Render(renderOverlay("Welcome",
			"Notes you email to\n\n  "+titleStyle.Render(m.firstRunAlias)+
				"\n\nwill appear in your vault.", "c: copy address  enter/esc: close"))
	case overlayPaywall:
		return appStyle.Render(renderOverlay("Import quota exceeded",
			"Your import quota for this period is used up.\nNew notes will be imported once the quota resets or is raised.",
			"enter/esc: close"))
	case overlayConfirmRotate:
		return appStyle.Render(renderOverlay("New import address",
			"Replace "+valueOrNA(m.snapshot.Alias)+" with a new address?\nMail sent to the old address will no longer be imported.",
			"y: confirm  n/esc: cancel"))
	case overlayBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	return appStyle.Render(m.renderPanel())
}

func (m model) renderPanel() string {
	now := m.now()
	s := m.snapshot
	var b strings.Builder

	b.WriteString(viewTitle(titleStyle.Render("MAIL NOTES") + "  " + quotaBadge(s)))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Address", valueOrNA(s.Alias))
	row("This period", fmt.Sprintf("%d imported", s.Quota.ImportsThisPeriod))
	row("Last sync", formatAgo(s.LastSuccessAt, now))
	row("Next poll", formatNextPoll(s, now))
	row("Synced up to", formatAgo(s.Cursor.LastSyncTimestamp, now))
	row("Auto-open", onOff(s.AutoOpen))
	if m.rotating {
		row("Address", helpStyle.Render("requesting a new address..."))
	}
	if s.LastError != "" {
		row("Last error", errorStyle.Render(s.LastError))
	}

	if len(m.toasts) > 0 {
		b.WriteString("\n")
		for _, t := range m.toasts {
			b.WriteString(renderToast(t))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(okStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return b.String()
}

func quotaBadge(s models.Snapshot) string {
	text := fmt.Sprintf("%d", s.Quota.Used)
	if s.Quota.Limit > 0 {
		text = fmt.Sprintf("%d / %d", s.Quota.Used, s.Quota.Limit)
	}
	if s.OverQuota {
		return badgeOverStyle.Render(text + " over quota")
	}
	return badgeStyle.Render(text)
}

func renderToast(e models.Event) string {
	switch e.Kind {
	case models.EventNoteFailed, models.EventRegistrationFailed:
		return errorStyle.Render("✗ ") + e.Message
	case models.EventQuotaExceeded:
		return warnStyle.Render("! ") + e.Message
	case models.EventNoteImported:
		return okStyle.Render("✓ ") + e.Message
	default:
		return helpStyle.Render("• ") + e.Message
	}
}

func formatAgo(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	return humanDuration(d) + " ago"
}

func formatNextPoll(s models.Snapshot, now time.Time) string {
	if s.LastAttemptAt.IsZero() {
		return "pending"
	}
	remaining := s.LastAttemptAt.Add(s.NextPollIn).Sub(now)
	if remaining <= 0 {
		return "due"
	}
	return "in " + humanDuration(remaining)
}

func humanDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func renderOverlay(title, body, hotKeys string) string {
	content := titleStyle.Render(title) + "\n\n" + body + "\n\n" + helpStyle.Render(hotKeys)
	return overlayBoxStyle.Render(content)
}
