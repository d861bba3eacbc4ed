// Package script compiles line-oriented macro scripts.
//
// Each line is split on whitespace and dispatched on its first field:
//
//	delay [ms]               pause (default delay when ms is missing)
//	defaultdelay ms          set the default delay, 1..999
//	default_delay ms         same as defaultdelay
//	nodelay                  skip the automatic delay before the next key
//	name <text>              set the macro name
//	press|keypress key [ms]  tap a key, holding it ms milliseconds
//	down|keydown key         press a key
//	up|keyup key             release a key
//	key                      shorthand for "press key"
//
// Key events are separated by an automatic delay of the default length
// unless a delay or nodelay line came in between. Malformed lines are
// reported and skipped; compilation itself never fails.
package script

import (
	"iter"
	"strconv"
	"strings"
	"unicode"

	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/keys"
	"github.com/v0xg/k90macro/internal/macro"
)

// delayState tracks whether the next key event must be preceded by an
// automatic delay.
type delayState int

const (
	delaySatisfied delayState = iota
	delayOwed
)

// state is everything carried from one line to the next.
type state struct {
	name         string
	defaultDelay uint16
	pending      delayState
	events       []macro.Event
}

func initialState() state {
	return state{
		name:         macro.DefaultName,
		defaultDelay: macro.DefaultDelay,
		pending:      delaySatisfied,
	}
}

// Compile folds lines into a macro, reporting malformed lines and unknown
// key names to sink.
func Compile(lines iter.Seq[string], sink *diag.Sink) *macro.Macro {
	st := initialState()
	for line := range lines {
		st = step(st, line, sink)
	}
	return &macro.Macro{
		Name:         st.name,
		DefaultDelay: st.defaultDelay,
		Events:       st.events,
	}
}

// CompileString compiles a script held in memory.
func CompileString(src string, sink *diag.Sink) *macro.Macro {
	return Compile(strings.Lines(src), sink)
}

// step applies one line to st.
func step(st state, line string, sink *diag.Sink) state {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return st
	}

	malformed := func() state {
		sink.Warnf("ignoring malformed line '%s'", strings.TrimRight(line, "\r\n"))
		return st
	}

	switch fields[0] {
	case "delay":
		ms := st.defaultDelay
		if len(fields) == 2 {
			ms = st.millis(fields[1])
		}
		st.events = append(st.events, macro.Delay{Milliseconds: ms})
		st.pending = delaySatisfied

	case "defaultdelay", "default_delay":
		if len(fields) != 2 {
			return malformed()
		}
		ms, err := strconv.Atoi(fields[1])
		if err != nil || ms < macro.MinDefaultDelay || ms > macro.MaxDefaultDelay {
			return malformed()
		}
		st.defaultDelay = uint16(ms)

	case "nodelay":
		st.pending = delaySatisfied

	case "name":
		st.name = nameArgument(line, fields[0])

	case "press", "keypress":
		if len(fields) < 2 || len(fields) > 3 {
			return malformed()
		}
		key := keys.Resolve(fields[1], sink)
		if key == keys.None {
			return st
		}
		hold := st.defaultDelay
		if len(fields) == 3 {
			hold = st.millis(fields[2])
		}
		st = st.emitKey(macro.KeyTap{Key: key, HoldMilliseconds: hold})

	case "down", "keydown":
		if len(fields) != 2 {
			return malformed()
		}
		key := keys.Resolve(fields[1], sink)
		if key == keys.None {
			return st
		}
		st = st.emitKey(macro.KeyDown{Key: key})

	case "up", "keyup":
		if len(fields) != 2 {
			return malformed()
		}
		key := keys.Resolve(fields[1], sink)
		if key == keys.None {
			return st
		}
		st = st.emitKey(macro.KeyUp{Key: key})

	default:
		key := keys.Resolve(fields[0], sink)
		if key == keys.None {
			return st
		}
		st = st.emitKey(macro.KeyTap{Key: key, HoldMilliseconds: st.defaultDelay})
	}

	return st
}

// emitKey appends a key event, paying any owed delay first.
func (st state) emitKey(e macro.Event) state {
	if st.pending == delayOwed {
		st.events = append(st.events, macro.Delay{Milliseconds: st.defaultDelay})
	}
	st.events = append(st.events, e)
	st.pending = delayOwed
	return st
}

// millis parses a millisecond argument, falling back to the default delay.
func (st state) millis(s string) uint16 {
	ms, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return st.defaultDelay
	}
	return uint16(ms)
}

// nameArgument returns the text following the keyword, keeping its inner
// spacing.
func nameArgument(line, keyword string) string {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	rest = strings.TrimPrefix(rest, keyword)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return macro.DefaultName
	}
	return rest
}
