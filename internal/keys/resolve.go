// Package keys maps the key names used in macro scripts to virtual-key codes.
package keys

import (
	"strconv"

	"github.com/v0xg/k90macro/internal/diag"
)

// Resolve returns the key code named by token, or None when the token is not
// a key. Resolution order:
//   - a single ASCII letter (either case) maps into A..Z
//   - a single ASCII digit maps into D0..D9
//   - a script alias such as "ctrl" or "pgdn"
//   - an enumeration name such as "F5" or "OemMinus"
//   - a decimal code in 1..254 (0xff is the payload's delay opcode)
//
// An unknown token is reported to sink.
func Resolve(token string, sink *diag.Sink) Code {
	if len(token) == 1 {
		ch := token[0]
		switch {
		case ch >= 'a' && ch <= 'z':
			return A + Code(ch-'a')
		case ch >= 'A' && ch <= 'Z':
			return A + Code(ch-'A')
		case ch >= '0' && ch <= '9':
			return D0 + Code(ch-'0')
		}
	}

	if c, ok := aliases[token]; ok {
		return c
	}
	if c, ok := Lookup(token); ok {
		return c
	}
	if n, err := strconv.ParseUint(token, 10, 8); err == nil && n != 0 && n != 0xff {
		return Code(n)
	}

	sink.Warnf("warning: could not parse key name '%s', ignoring", token)
	return None
}
