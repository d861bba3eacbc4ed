package player

import (
	"github.com/go-rod/rod/lib/input"
	"github.com/v0xg/k90macro/internal/keys"
)

// browserKeys maps virtual-key codes to the DOM keys rod can dispatch.
// Generic modifiers press their left-hand variant.
var browserKeys = map[keys.Code]input.Key{
	keys.Back:        input.Backspace,
	keys.Tab:         input.Tab,
	keys.Enter:       input.Enter,
	keys.ShiftKey:    input.ShiftLeft,
	keys.LShiftKey:   input.ShiftLeft,
	keys.RShiftKey:   input.ShiftRight,
	keys.ControlKey:  input.ControlLeft,
	keys.LControlKey: input.ControlLeft,
	keys.RControlKey: input.ControlRight,
	keys.Menu:        input.AltLeft,
	keys.LMenu:       input.AltLeft,
	keys.RMenu:       input.AltRight,
	keys.Escape:      input.Escape,
	keys.Space:       input.Space,
	keys.PageUp:      input.PageUp,
	keys.PageDown:    input.PageDown,
	keys.End:         input.End,
	keys.Home:        input.Home,
	keys.Left:        input.ArrowLeft,
	keys.Up:          input.ArrowUp,
	keys.Right:       input.ArrowRight,
	keys.Down:        input.ArrowDown,
	keys.Insert:      input.Insert,
	keys.Delete:      input.Delete,
	keys.Oemcomma:    input.Key(','),
	keys.OemPeriod:   input.Key('.'),
	keys.Oemtilde:    input.Key('`'),
}

// BrowserKey returns the rod key for a virtual-key code.
func BrowserKey(code keys.Code) (input.Key, bool) {
	switch {
	case code.IsLetter():
		return input.Key('a' + rune(code-keys.A)), true
	case code.IsDigit():
		return input.Key('0' + rune(code-keys.D0)), true
	}
	k, ok := browserKeys[code]
	return k, ok
}
