package roundservice

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Hole fields a patch can clear.
const (
	FieldScore              = "score"
	FieldPenalties          = "penalties"
	FieldFairway            = "fairway"
	FieldGIR                = "gir"
	FieldUpDown             = "up_down"
	FieldFirstPuttDistance  = "first_putt_distance"
	FieldTotalPutts         = "total_putts"
	FieldTiger5ShortMiss    = "tiger5_short_miss"
	FieldTiger5MissedUpDown = "tiger5_missed_updown"
)

var clearableFields = map[string]bool{
	FieldScore:              true,
	FieldPenalties:          true,
	FieldFairway:            true,
	FieldGIR:                true,
	FieldUpDown:             true,
	FieldFirstPuttDistance:  true,
	FieldTotalPutts:         true,
	FieldTiger5ShortMiss:    true,
	FieldTiger5MissedUpDown: true,
}

var jsonNull = []byte("null")

// Clear returns a copy of p that resets the named fields.
func (p HolePatch) Clear(fields ...string) HolePatch {
	cleared := make(map[string]bool, len(p.cleared)+len(fields))
	for f := range p.cleared {
		cleared[f] = true
	}
	for _, f := range fields {
		cleared[f] = true
	}
	p.cleared = cleared
	return p
}

// Clears reports whether the patch resets field.
func (p HolePatch) Clears(field string) bool {
	return p.cleared[field]
}

// UnmarshalJSON keeps explicit nulls apart from absent fields. gir also
// accepts 1 and 0.
func (p *HolePatch) UnmarshalJSON(data []byte) error {
	type plain HolePatch
	var wire struct {
		plain
		GIR json.RawMessage `json:"gir"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = HolePatch(wire.plain)
	p.cleared = nil
	for field, value := range raw {
		if clearableFields[field] && bytes.Equal(bytes.TrimSpace(value), jsonNull) {
			*p = p.Clear(field)
		}
	}

	gir, err := decodeGIR(wire.GIR)
	if err != nil {
		return err
	}
	p.GIR = gir
	return nil
}

func decodeGIR(raw json.RawMessage) (*bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, nil
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return &b, nil
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil && (n == 0 || n == 1) {
		b = n == 1
		return &b, nil
	}
	return nil, fmt.Errorf("gir must be true, false, 1 or 0, got %s", raw)
}
