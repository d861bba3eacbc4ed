package script

import (
	"fmt"
	"strings"

	"github.com/v0xg/k90macro/internal/macro"
)

// Format renders m as a script that compiles back to the same name, default
// delay and events. Every delay is written out explicitly; "nodelay" marks
// key events that follow each other without one.
func Format(m *macro.Macro) string {
	var b strings.Builder

	fmt.Fprintf(&b, "name %s\n", m.Name)
	if m.DefaultDelay >= macro.MinDefaultDelay && m.DefaultDelay <= macro.MaxDefaultDelay {
		fmt.Fprintf(&b, "defaultdelay %d\n", m.DefaultDelay)
	}

	owed := false
	for _, e := range m.Events {
		if _, isDelay := e.(macro.Delay); isDelay {
			owed = false
		} else {
			if owed {
				b.WriteString("nodelay\n")
			}
			owed = true
		}
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
