// Package descriptor builds the GKEYINFO document that carries a compiled
// macro to the device profile.
package descriptor

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/macro"
)

// RootElement is the document element of a descriptor.
const RootElement = "GKEYINFO"

// Field names, in document order.
const (
	FieldInfo             = "Info"
	FieldLoopType         = "LoopType"
	FieldButtonFunction   = "ButtonFunction"
	FieldButtonID         = "ButtonID"
	FieldDefaultDelayTime = "DefaultDelayTime"
	FieldDelayType        = "DelayType"
	FieldFixMacroDelay    = "FixMacroDelay"
	FieldLaunchPath       = "LaunchPath"
	FieldLoopNumber       = "LoopNumber"
	FieldMacroName        = "MacroName"
	FieldRandomDelayTime  = "RandomDelayTime"
	FieldMacroInfo        = "MacroInfo"
)

var ErrNoPayload = errors.New("descriptor has no MacroInfo field")

// Field is one named value of the descriptor.
type Field struct {
	Name  string
	Value string
}

// Descriptor is an ordered list of fields.
type Descriptor struct {
	Fields []Field
}

// FromMacro computes the descriptor fields for m. Payload diagnostics go to
// sink.
func FromMacro(m *macro.Macro, sink *diag.Sink) Descriptor {
	delay := strconv.Itoa(int(m.DefaultDelay))
	return Descriptor{Fields: []Field{
		{FieldInfo, "LaverGKey"},
		{FieldLoopType, "0"},
		{FieldButtonFunction, "48"},
		{FieldButtonID, "1"},
		{FieldDefaultDelayTime, delay},
		{FieldDelayType, "2"},
		{FieldFixMacroDelay, delay},
		{FieldLaunchPath, ""},
		{FieldLoopNumber, "1"},
		{FieldMacroName, m.Name},
		{FieldRandomDelayTime, "1000"},
		{FieldMacroInfo, m.Payload(sink)},
	}}
}

// Get returns the value of the named field.
func (d Descriptor) Get(name string) (string, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Macro reconstructs the macro carried by the descriptor. Key taps are
// recovered from their down/delay/up opcodes.
func (d Descriptor) Macro() (*macro.Macro, error) {
	payload, ok := d.Get(FieldMacroInfo)
	if !ok {
		return nil, ErrNoPayload
	}
	events, err := macro.Decode(payload)
	if err != nil {
		return nil, err
	}

	m := macro.New()
	m.Events = macro.Fold(events)
	if name, ok := d.Get(FieldMacroName); ok && name != "" {
		m.Name = name
	}
	if v, ok := d.Get(FieldDefaultDelayTime); ok {
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", FieldDefaultDelayTime, v, err)
		}
		m.DefaultDelay = uint16(n)
	}
	return m, nil
}
