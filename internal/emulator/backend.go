// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package emulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qnexus/internal/hugr"
	"github.com/MKhiriev/go-qnexus/internal/qsys"
	"github.com/MKhiriev/go-qnexus/models"
)

const (
	seleneName    = "selene"
	seleneVersion = "0.2.0"
	heliosVersion = "1.0.0"
)

var ErrCapacityExceeded = errors.New("program exceeds backend qubit capacity")

var (
	seleneGateSet = []string{"H", "X", "Y", "Z", "S", "T", "Rx", "Ry", "Rz", "CX", "CZ", "Measure", "Reset"}
	heliosGateSet = []string{"PhasedX", "Rz", "ZZPhase", "ZZMax", "Measure", "Reset"}
)

// Backend executes programs for one backend config.
type Backend interface {
	// Info describes the backend the way it is reported with results.
	Info() models.BackendInfo

	// Run samples nShots shots of prog and returns them in the raw
	// encoding.
	Run(ctx context.Context, prog hugr.Program, nShots int) (*models.RawQsysResult, error)
}

// New selects the backend for cfg: the selene simulator for SeleneConfig and
// the emulator of the named device for HeliosConfig.
func New(cfg models.BackendConfig, sampler Sampler) (Backend, error) {
	if err := models.ValidateBackendConfig(cfg); err != nil {
		return nil, err
	}

	switch c := cfg.(type) {
	case models.SeleneConfig:
		return newSelene(c, sampler), nil
	case *models.SeleneConfig:
		return newSelene(*c, sampler), nil
	case models.HeliosConfig:
		return newHelios(c, sampler), nil
	case *models.HeliosConfig:
		return newHelios(*c, sampler), nil
	default:
		return nil, fmt.Errorf("%w: %T", models.ErrUnknownBackendConfig, cfg)
	}
}

type backend struct {
	info    models.BackendInfo
	sampler Sampler
}

func newSelene(cfg models.SeleneConfig, sampler Sampler) *backend {
	return &backend{
		info: models.BackendInfo{
			Name:                          seleneName,
			DeviceName:                    seleneName,
			Version:                       seleneVersion,
			NQubits:                       cfg.NQubits,
			GateSet:                       seleneGateSet,
			SupportsMidCircuitMeasurement: true,
			Misc:                          map[string]string{"simulator": "stabilizer"},
		},
		sampler: sampler,
	}
}

func newHelios(cfg models.HeliosConfig, sampler Sampler) *backend {
	return &backend{
		info: models.BackendInfo{
			Name:                          "helios",
			DeviceName:                    cfg.SystemName,
			Version:                       heliosVersion,
			NQubits:                       cfg.QubitCapacity(),
			GateSet:                       heliosGateSet,
			SupportsMidCircuitMeasurement: true,
			Misc:                          map[string]string{"emulator": "true"},
		},
		sampler: sampler,
	}
}

func (b *backend) Info() models.BackendInfo {
	info := b.info
	info.GateSet = append([]string(nil), b.info.GateSet...)
	info.Misc = make(map[string]string, len(b.info.Misc))
	for k, v := range b.info.Misc {
		info.Misc[k] = v
	}
	return info
}

func (b *backend) Run(ctx context.Context, prog hugr.Program, nShots int) (*models.RawQsysResult, error) {
	if prog.Qubits > b.info.NQubits {
		return nil, fmt.Errorf("%w: program requires %d qubits, %s has %d",
			ErrCapacityExceeded, prog.Qubits, b.info.DeviceName, b.info.NQubits)
	}

	tags := make([]string, len(prog.Results))
	for i, decl := range prog.Results {
		tags[i] = qsys.UserTag(decl.Kind, decl.Label)
	}

	out := &models.RawQsysResult{Results: make([]models.QsysShot, nShots)}
	for shot := range nShots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries := make([]models.Entry, len(prog.Results))
		for i, decl := range prog.Results {
			entries[i] = models.Entry{Tag: tags[i], Value: b.sampler.Sample(decl.Kind, decl.Width)}
		}
		out.Results[shot] = models.QsysShot{Entries: entries}
	}

	return out, nil
}
