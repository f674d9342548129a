// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package qsys

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-qnexus/models"
)

// TagOutcome is the bit string recorded for one tag within a single shot.
type TagOutcome struct {
	Tag  string
	Bits string
}

// Outcome is the collated content of one shot: one TagOutcome per tag, in
// order of first appearance.
type Outcome []TagOutcome

// keyEscaper escapes the separators of [Outcome.Key] inside tag labels.
var keyEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, "=", `\=`)

// Key renders the outcome as "tag=bits" pairs joined by commas. Backslash,
// comma and equals sign in a tag are escaped with a backslash, so distinct
// outcomes never share a key.
func (o Outcome) Key() string {
	parts := make([]string, len(o))
	for i, tb := range o {
		parts[i] = keyEscaper.Replace(tb.Tag) + "=" + tb.Bits
	}
	return strings.Join(parts, ",")
}

// Counts maps outcome keys to the number of shots that produced them.
type Counts map[string]int

// OutcomeCount is one row of [Counts.Sorted].
type OutcomeCount struct {
	Key   string
	Count int
}

// Sorted returns the counts ordered by descending count, then key.
func (c Counts) Sorted() []OutcomeCount {
	out := make([]OutcomeCount, 0, len(c))
	for k, n := range c {
		out = append(out, OutcomeCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Total returns the number of shots counted.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CollateShot concatenates the bit-valued entries of a shot per tag. Entries
// that are not bits (integers other than 0 and 1, floats) are skipped.
func CollateShot(shot models.QsysShot) Outcome {
	var out Outcome
	index := make(map[string]int)

	for _, e := range shot.Entries {
		bits, ok := bitString(e.Value)
		if !ok {
			continue
		}
		if i, seen := index[e.Tag]; seen {
			out[i].Bits += bits
			continue
		}
		index[e.Tag] = len(out)
		out = append(out, TagOutcome{Tag: e.Tag, Bits: bits})
	}

	return out
}

// CollatedCounts counts distinct shot outcomes across a collated result.
// Shots without any bit-valued entry are not counted, so the result is
// non-empty whenever some shot recorded a bool or bit array.
func CollatedCounts(r *models.QsysResult) Counts {
	counts := make(Counts)
	if r == nil {
		return counts
	}

	for _, shot := range r.Results {
		outcome := CollateShot(shot)
		if len(outcome) == 0 {
			continue
		}
		counts[outcome.Key()]++
	}

	return counts
}

func bitString(v models.DataValue) (string, bool) {
	switch v.Kind() {
	case models.KindBits:
		return v.String(), true
	case models.KindInt:
		switch v.Int() {
		case 0:
			return "0", true
		case 1:
			return "1", true
		}
	}
	return "", false
}
