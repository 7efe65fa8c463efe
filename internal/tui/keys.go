package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	sync      key.Binding
	copyAlias key.Binding
	autoOpen  key.Binding
	rotate    key.Binding
	buildInfo key.Binding
	close     key.Binding
	yes       key.Binding
	no        key.Binding
	quit      key.Binding
}

var keys = keyMap{
	sync:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync now")),
	copyAlias: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy address")),
	autoOpen:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle auto-open")),
	rotate:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new address")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	close:     key.NewBinding(key.WithKeys("esc", "enter")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.sync, k.copyAlias, k.autoOpen, k.rotate, k.buildInfo, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
