package view

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev             key.Binding
	Up, Down, Left, Right  key.Binding
	RotateCW, RotateCCW    key.Binding
	ZoomIn, ZoomOut        key.Binding
	Shear, Flip, Reset     key.Binding
	GrowProbe, ShrinkProbe key.Binding
	Coarser, Finer         key.Binding
	Help, Quit             key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next shape")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev shape")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "probe up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "probe down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "probe left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "probe right")),
		RotateCW:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r/R", "rotate")),
		RotateCCW:   key.NewBinding(key.WithKeys("R")),
		ZoomIn:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "scale")),
		ZoomOut:     key.NewBinding(key.WithKeys("-", "_")),
		Shear:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shear")),
		Flip:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flip")),
		Reset:       key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		GrowProbe:   key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "probe radius")),
		ShrinkProbe: key.NewBinding(key.WithKeys("[")),
		Coarser:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t/T", "tolerance")),
		Finer:       key.NewBinding(key.WithKeys("T")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.RotateCW, k.ZoomIn, k.Shear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Reset},
		{k.Up, k.Down, k.Left, k.Right},
		{k.RotateCW, k.ZoomIn, k.Shear, k.Flip},
		{k.GrowProbe, k.Coarser, k.Help, k.Quit},
	}
}
