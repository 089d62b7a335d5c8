package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type SpecKind int

const (
	SpecString SpecKind = iota
	SpecNumber
	SpecBool
)

// SpecValue is a technical attribute value: string, number or boolean
// on the wire. Matching and display both go through String, so a filter
// value compares against the same text a visitor sees.
type SpecValue struct {
	kind SpecKind
	str  string
	num  float64
	b    bool
}

func StringSpec(s string) SpecValue  { return SpecValue{kind: SpecString, str: s} }
func NumberSpec(n float64) SpecValue { return SpecValue{kind: SpecNumber, num: n} }
func BoolSpec(b bool) SpecValue      { return SpecValue{kind: SpecBool, b: b} }

func (v SpecValue) Kind() SpecKind { return v.kind }

// String renders the value the way the site prints it. Numbers keep no
// trailing zeros, so "70" matches a spec stored as the number 70.
func (v SpecValue) String() string {
	switch v.kind {
	case SpecNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case SpecBool:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

func (v SpecValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case SpecNumber:
		return json.Marshal(v.num)
	case SpecBool:
		return json.Marshal(v.b)
	default:
		return json.Marshal(v.str)
	}
}

func (v *SpecValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = StringSpec(t)
	case float64:
		*v = NumberSpec(t)
	case bool:
		*v = BoolSpec(t)
	default:
		return fmt.Errorf("spec value: unsupported JSON type %T", raw)
	}
	return nil
}
