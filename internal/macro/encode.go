package macro

import (
	"github.com/v0xg/k90macro/internal/diag"
)

// Payload layout.
const (
	OpcodeSize = 3        // bytes per opcode
	MaxOpcodes = 1360     // opcodes in a full payload
	MaxChars   = 1360 * 6 // hex characters in a full payload
	Filler     = "000000"
)

// Encode serializes events into the payload string. Short payloads are padded
// with Filler up to MaxChars. A payload that is already longer than MaxChars
// is reported to sink and returned in full.
func Encode(events []Event, sink *diag.Sink) string {
	buf := make([]byte, 0, MaxChars)
	for _, e := range events {
		buf = e.AppendHex(buf)
	}

	for len(buf) < MaxChars {
		buf = append(buf, Filler...)
	}
	if len(buf) > MaxChars {
		sink.Warnf("warning: macro maximum size exceeded")
	}
	return string(buf)
}

// Payload encodes the macro's events.
func (m *Macro) Payload(sink *diag.Sink) string {
	return Encode(m.Events, sink)
}
