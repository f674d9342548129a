// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package emulator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/MKhiriev/go-qnexus/internal/qsys"
	"github.com/MKhiriev/go-qnexus/models"
)

// Mode selects how outcomes are sampled.
type Mode string

const (
	// ModeIdeal records every result as set: bools and ints are 1, floats
	// 1.0 and bit arrays all ones. Runs are fully deterministic.
	ModeIdeal Mode = "ideal"

	// ModeRandom draws uniform outcomes from a seeded generator.
	ModeRandom Mode = "random"
)

var ErrUnknownMode = errors.New("unknown sampler mode")

// Sampler produces a value for a declared result.
type Sampler interface {
	Sample(kind qsys.TagKind, width int) models.DataValue
}

// NewSampler returns the sampler for mode. A zero seed in random mode picks a
// fresh seed.
func NewSampler(mode Mode, seed uint64) (Sampler, error) {
	switch mode {
	case ModeIdeal, "":
		return idealSampler{}, nil
	case ModeRandom:
		if seed == 0 {
			seed = rand.Uint64()
		}
		return &randomSampler{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

type idealSampler struct{}

func (idealSampler) Sample(kind qsys.TagKind, width int) models.DataValue {
	switch kind {
	case qsys.TagFloat:
		return models.FloatValue(1)
	case qsys.TagBits:
		bits := make([]bool, max(width, 1))
		for i := range bits {
			bits[i] = true
		}
		return models.BitsValue(bits...)
	default:
		return models.IntValue(1)
	}
}

type randomSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *randomSampler) Sample(kind qsys.TagKind, width int) models.DataValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case qsys.TagFloat:
		return models.FloatValue(s.rnd.Float64())
	case qsys.TagBits:
		bits := make([]bool, max(width, 1))
		for i := range bits {
			bits[i] = s.rnd.IntN(2) == 1
		}
		return models.BitsValue(bits...)
	case qsys.TagInt, qsys.TagUint:
		return models.IntValue(s.rnd.Int64N(1 << 16))
	default:
		return models.IntValue(s.rnd.Int64N(2))
	}
}
