package macro

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/v0xg/k90macro/internal/keys"
)

// Decode errors
var (
	ErrTruncated     = errors.New("payload is not a whole number of opcodes")
	ErrUnknownOpcode = errors.New("unknown opcode")
)

// Decode parses a payload back into primitive events (Delay, KeyDown, KeyUp).
// Decoding stops at the first filler opcode.
func Decode(payload string) ([]Event, error) {
	payload = strings.TrimSpace(payload)
	raw, err := hex.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	if len(raw)%OpcodeSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(raw))
	}

	var events []Event
	for off := 0; off < len(raw); off += OpcodeSize {
		op := raw[off]
		arg := uint16(raw[off+1])<<8 | uint16(raw[off+2])

		switch {
		case op == 0 && arg == 0:
			return events, nil
		case op == delayOpcode:
			events = append(events, Delay{Milliseconds: arg})
		case op != 0 && arg == keyPressed:
			events = append(events, KeyDown{Key: keys.Code(op)})
		case op != 0 && arg == keyReleased:
			events = append(events, KeyUp{Key: keys.Code(op)})
		default:
			return nil, fmt.Errorf("%w %q at opcode %d", ErrUnknownOpcode, payload[off*2:off*2+OpcodeSize*2], off/OpcodeSize)
		}
	}
	return events, nil
}

// Fold merges every KeyDown, Delay, KeyUp run on the same key into a KeyTap.
// Encode(Fold(events)) equals Encode(events).
func Fold(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for i := 0; i < len(events); i++ {
		if i+2 < len(events) {
			down, ok1 := events[i].(KeyDown)
			hold, ok2 := events[i+1].(Delay)
			up, ok3 := events[i+2].(KeyUp)
			if ok1 && ok2 && ok3 && down.Key == up.Key {
				out = append(out, KeyTap{Key: down.Key, HoldMilliseconds: hold.Milliseconds})
				i += 2
				continue
			}
		}
		out = append(out, events[i])
	}
	return out
}
