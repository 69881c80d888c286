package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the preview's bindings. It satisfies help.KeyMap.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Reveal    key.Binding
	Submit    key.Binding
	Enter     key.Binding
	Screen    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "siguiente")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "anterior")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "izquierda")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "derecha")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("inicio", "al principio")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("fin", "al final")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "borrar")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("supr", "suprimir")),
		Reveal:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "mostrar contraseña")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "registrarse")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirmar")),
		Screen:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "cambiar pantalla")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "ayuda")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "salir")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Screen, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Enter},
		{k.Left, k.Right, k.Home, k.End},
		{k.Backspace, k.Delete, k.Reveal},
		{k.Submit, k.Screen, k.Help, k.Quit},
	}
}
