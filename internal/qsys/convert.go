// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package qsys

import (
	"fmt"

	"github.com/MKhiriev/go-qnexus/models"
)

// Collate converts a raw result into the collated encoding. User entries
// keep their order and lose the "USER:<KIND>:" prefix; bool entries become
// the integers 0 and 1. Non-user entries are dropped.
func Collate(raw *models.RawQsysResult) (*models.QsysResult, error) {
	if raw == nil {
		return &models.QsysResult{}, nil
	}

	out := &models.QsysResult{Results: make([]models.QsysShot, 0, len(raw.Results))}
	for i, shot := range raw.Results {
		collated := models.QsysShot{Entries: make([]models.Entry, 0, len(shot.Entries))}

		for _, entry := range shot.Entries {
			tag, err := ParseRawTag(entry.Tag)
			if err != nil {
				return nil, fmt.Errorf("shot %d: %w", i, err)
			}
			if !tag.IsUser() {
				continue
			}

			value, err := collateValue(tag.Kind, entry.Value)
			if err != nil {
				return nil, fmt.Errorf("shot %d, tag %q: %w", i, entry.Tag, err)
			}
			collated.Entries = append(collated.Entries, models.Entry{Tag: tag.Label, Value: value})
		}

		out.Results = append(out.Results, collated)
	}

	return out, nil
}

func collateValue(kind TagKind, v models.DataValue) (models.DataValue, error) {
	switch kind {
	case TagBool:
		n := v.Int()
		if v.Kind() != models.KindInt || (n != 0 && n != 1) {
			return models.DataValue{}, fmt.Errorf("bool entry has value %s", v)
		}
		return models.BoolValue(n == 1), nil
	case TagInt, TagUint:
		return models.IntValue(v.Int()), nil
	case TagFloat:
		return models.FloatValue(v.Float()), nil
	case TagBits:
		if v.Kind() != models.KindBits {
			return models.DataValue{}, fmt.Errorf("bit array entry has value %s", v)
		}
		return v, nil
	default:
		return models.DataValue{}, fmt.Errorf("%w: %s", ErrMalformedTag, kind)
	}
}
