package keys

import "sort"

// aliases maps the script's friendly key names to key codes. Lookups are
// case-sensitive.
var aliases = map[string]Code{
	"`":     Oemtilde,
	"~":     Oemtilde,
	"tilde": Oemtilde,

	"shift":       ShiftKey,
	"lshift":      LShiftKey,
	"leftshift":   LShiftKey,
	"left_shift":  LShiftKey,
	"rshift":      RShiftKey,
	"rightshift":  RShiftKey,
	"right_shift": RShiftKey,

	"ctrl":          ControlKey,
	"control":       ControlKey,
	"lctrl":         LControlKey,
	"leftctrl":      LControlKey,
	"left_ctrl":     LControlKey,
	"lcontrol":      LControlKey,
	"leftcontrol":   LControlKey,
	"left_control":  LControlKey,
	"rctrl":         RControlKey,
	"rightctrl":     RControlKey,
	"right_ctrl":    RControlKey,
	"rcontrol":      RControlKey,
	"rightcontrol":  RControlKey,
	"right_control": RControlKey,

	"alt":       Menu,
	"lalt":      LMenu,
	"leftalt":   LMenu,
	"left_alt":  LMenu,
	"altgr":     RMenu,
	"ralt":      RMenu,
	"rightalt":  RMenu,
	"right_alt": RMenu,

	"enter":  Enter,
	"return": Enter,
	"esc":    Escape,
	"escape": Escape,
	"ins":    Insert,
	"insert": Insert,
	"del":    Delete,
	"delete": Delete,

	"bkspc":     Back,
	"backspace": Back,
	"home":      Home,
	"end":       End,
	"left":      Left,
	"right":     Right,
	"up":        Up,
	"down":      Down,
	"pgup":      PageUp,
	"pageup":    PageUp,
	"pgdn":      PageDown,
	"pagedown":  PageDown,

	"space":    Space,
	"spacebar": Space,
	"spc":      Space,
	".":        OemPeriod,
	",":        Oemcomma,
}

// Alias is one entry of the alias table.
type Alias struct {
	Name string
	Code Code
}

// Aliases returns the alias table sorted by key code, then name.
func Aliases() []Alias {
	out := make([]Alias, 0, len(aliases))
	for name, code := range aliases {
		out = append(out, Alias{Name: name, Code: code})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Name < out[j].Name
	})
	return out
}
