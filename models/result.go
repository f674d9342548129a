// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ResultVersion selects the encoding a result is downloaded in.
type ResultVersion int

const (
	// ResultVersionDefault is the collated encoding: plain labels, typed
	// values.
	ResultVersionDefault ResultVersion = 3

	// ResultVersionRaw is the raw encoding: labels carry a
	// "USER:<KIND>:" prefix.
	ResultVersionRaw ResultVersion = 4
)

// ParseResultVersion parses the textual form used in query strings. An empty
// string selects the default version.
func ParseResultVersion(s string) (ResultVersion, error) {
	if s == "" {
		return ResultVersionDefault, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDecodeVersionUnsupported, s)
	}

	v := ResultVersion(n)
	if !v.Supported() {
		return 0, fmt.Errorf("%w: %d", ErrDecodeVersionUnsupported, n)
	}
	return v, nil
}

// Supported reports whether v is a known version.
func (v ResultVersion) Supported() bool {
	return v == ResultVersionDefault || v == ResultVersionRaw
}

func (v ResultVersion) String() string {
	switch v {
	case ResultVersionDefault:
		return "default"
	case ResultVersionRaw:
		return "raw"
	default:
		return "v" + strconv.Itoa(int(v))
	}
}

// ValueKind discriminates the content of a [DataValue].
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindFloat
	KindBits
)

// DataValue is one recorded result value: an integer, a float or a bit
// array.
type DataValue struct {
	kind ValueKind
	i    int64
	f    float64
	bits []bool
}

func IntValue(v int64) DataValue     { return DataValue{kind: KindInt, i: v} }
func FloatValue(v float64) DataValue { return DataValue{kind: KindFloat, f: v} }

func BitsValue(bits ...bool) DataValue {
	return DataValue{kind: KindBits, bits: append([]bool(nil), bits...)}
}

// BoolValue encodes b as the integer 0 or 1.
func BoolValue(b bool) DataValue {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}

func (v DataValue) Kind() ValueKind { return v.kind }

// Int returns the integer value; floats are truncated and bit arrays are read
// as little-endian integers.
func (v DataValue) Int() int64 {
	switch v.kind {
	case KindFloat:
		return int64(v.f)
	case KindBits:
		var n int64
		for i, b := range v.bits {
			if b {
				n |= 1 << i
			}
		}
		return n
	default:
		return v.i
	}
}

func (v DataValue) Float() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return float64(v.Int())
}

func (v DataValue) Bits() []bool {
	if v.kind == KindBits {
		return append([]bool(nil), v.bits...)
	}
	return nil
}

// String renders the value the way it appears in outcome keys: integers in
// decimal, floats with strconv 'g' formatting, bit arrays as a 0/1 string.
func (v DataValue) String() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBits:
		var sb strings.Builder
		for _, b := range v.bits {
			if b {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		return sb.String()
	default:
		return strconv.FormatInt(v.i, 10)
	}
}

func (v DataValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindFloat:
		s := strconv.FormatFloat(v.f, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return []byte(s), nil
	case KindBits:
		ints := make([]int, len(v.bits))
		for i, b := range v.bits {
			if b {
				ints[i] = 1
			}
		}
		return json.Marshal(ints)
	default:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	}
}

func (v *DataValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var ints []int
		if err := json.Unmarshal(data, &ints); err != nil {
			return fmt.Errorf("decode bit array: %w", err)
		}
		bits := make([]bool, len(ints))
		for i, n := range ints {
			bits[i] = n != 0
		}
		*v = DataValue{kind: KindBits, bits: bits}
		return nil
	}

	s := string(data)
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("decode float value: %w", err)
		}
		*v = FloatValue(f)
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("decode int value: %w", err)
	}
	*v = IntValue(n)
	return nil
}

// Entry is one (label, value) pair of a shot. It is encoded as a two-element
// JSON array.
type Entry struct {
	Tag   string
	Value DataValue
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Tag, e.Value})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode entry: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("decode entry: expected 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Tag); err != nil {
		return fmt.Errorf("decode entry tag: %w", err)
	}
	return e.Value.UnmarshalJSON(pair[1])
}

// QsysShot is the ordered output of one shot.
type QsysShot struct {
	Entries []Entry `json:"entries"`
}

// ExecutionPayload is a decoded result. The concrete type is selected by the
// requested [ResultVersion]: *QsysResult for ResultVersionDefault and
// *RawQsysResult for ResultVersionRaw.
type ExecutionPayload interface {
	Version() ResultVersion
	NShots() int
	isExecutionPayload()
}

// QsysResult is the collated encoding of a result.
type QsysResult struct {
	Results []QsysShot `json:"results"`
}

func (r *QsysResult) Version() ResultVersion { return ResultVersionDefault }
func (r *QsysResult) NShots() int            { return len(r.Results) }
func (r *QsysResult) isExecutionPayload()    {}

// RawQsysResult is the raw encoding of a result.
type RawQsysResult struct {
	Results []QsysShot `json:"results"`
}

func (r *RawQsysResult) Version() ResultVersion { return ResultVersionRaw }
func (r *RawQsysResult) NShots() int            { return len(r.Results) }
func (r *RawQsysResult) isExecutionPayload()    {}
