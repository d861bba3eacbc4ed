package macro

// Defaults for a freshly compiled macro.
const (
	DefaultName  = "NewMacro"
	DefaultDelay = 15

	MinDefaultDelay = 1
	MaxDefaultDelay = 999
)

// Macro is the result of compiling one script.
type Macro struct {
	Name         string
	DefaultDelay uint16
	Events       []Event
}

// New returns an empty macro with the default name and delay.
func New() *Macro {
	return &Macro{
		Name:         DefaultName,
		DefaultDelay: DefaultDelay,
	}
}

// Duration returns the total playback time in milliseconds.
func (m *Macro) Duration() int {
	total := 0
	for _, e := range m.Events {
		switch e := e.(type) {
		case Delay:
			total += int(e.Milliseconds)
		case KeyTap:
			total += int(e.HoldMilliseconds)
		}
	}
	return total
}

// Size returns the length in bytes of the unpadded payload.
func (m *Macro) Size() int {
	n := 0
	for _, e := range m.Events {
		n += opcodeCount(e) * OpcodeSize
	}
	return n
}

func opcodeCount(e Event) int {
	if _, ok := e.(KeyTap); ok {
		return 3
	}
	return 1
}
