// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Backend config discriminators as they appear in the "type" field of the
// JSON envelope.
const (
	BackendTypeSelene = "SeleneConfig"
	BackendTypeHelios = "HeliosConfig"
)

// BackendConfig describes the execution target of a job. It is a closed
// union: the only implementations are [SeleneConfig] and [HeliosConfig].
type BackendConfig interface {
	// BackendType returns the discriminator written to the JSON envelope.
	BackendType() string

	// QubitCapacity returns the number of qubits the target can allocate.
	QubitCapacity() int

	isBackendConfig()
}

// SeleneConfig selects the simulator sized by qubit count.
type SeleneConfig struct {
	NQubits int `json:"n_qubits"`
}

func (SeleneConfig) BackendType() string  { return BackendTypeSelene }
func (c SeleneConfig) QubitCapacity() int { return c.NQubits }
func (SeleneConfig) isBackendConfig()     {}

// HeliosEmulatorConfig sizes the emulator that stands in for a named device.
type HeliosEmulatorConfig struct {
	NQubits int `json:"n_qubits"`
}

// HeliosConfig selects a named device together with its emulator config.
type HeliosConfig struct {
	SystemName     string                `json:"system_name"`
	EmulatorConfig *HeliosEmulatorConfig `json:"emulator_config,omitempty"`
}

func (HeliosConfig) BackendType() string { return BackendTypeHelios }

func (c HeliosConfig) QubitCapacity() int {
	if c.EmulatorConfig == nil {
		return 0
	}
	return c.EmulatorConfig.NQubits
}

func (HeliosConfig) isBackendConfig() {}

// ValidateBackendConfig reports ErrUnknownBackendConfig for a nil config or
// one that is missing the fields its variant needs.
func ValidateBackendConfig(cfg BackendConfig) error {
	switch c := cfg.(type) {
	case SeleneConfig:
		if c.NQubits <= 0 {
			return fmt.Errorf("%w: selene n_qubits must be positive", ErrUnknownBackendConfig)
		}
	case *SeleneConfig:
		if c == nil {
			return ErrUnknownBackendConfig
		}
		return ValidateBackendConfig(*c)
	case HeliosConfig:
		if c.SystemName == "" {
			return fmt.Errorf("%w: helios system_name is required", ErrUnknownBackendConfig)
		}
		if c.EmulatorConfig == nil || c.EmulatorConfig.NQubits <= 0 {
			return fmt.Errorf("%w: helios emulator_config.n_qubits must be positive", ErrUnknownBackendConfig)
		}
	case *HeliosConfig:
		if c == nil {
			return ErrUnknownBackendConfig
		}
		return ValidateBackendConfig(*c)
	default:
		return ErrUnknownBackendConfig
	}

	return nil
}

// backendEnvelope is the wire form shared by every variant.
type backendEnvelope struct {
	Type           string                `json:"type"`
	NQubits        int                   `json:"n_qubits,omitempty"`
	SystemName     string                `json:"system_name,omitempty"`
	EmulatorConfig *HeliosEmulatorConfig `json:"emulator_config,omitempty"`
}

// MarshalBackendConfig encodes cfg into its tagged JSON envelope.
func MarshalBackendConfig(cfg BackendConfig) ([]byte, error) {
	var env backendEnvelope

	switch c := cfg.(type) {
	case SeleneConfig:
		env = backendEnvelope{Type: BackendTypeSelene, NQubits: c.NQubits}
	case *SeleneConfig:
		if c == nil {
			return nil, ErrUnknownBackendConfig
		}
		env = backendEnvelope{Type: BackendTypeSelene, NQubits: c.NQubits}
	case HeliosConfig:
		env = backendEnvelope{Type: BackendTypeHelios, SystemName: c.SystemName, EmulatorConfig: c.EmulatorConfig}
	case *HeliosConfig:
		if c == nil {
			return nil, ErrUnknownBackendConfig
		}
		env = backendEnvelope{Type: BackendTypeHelios, SystemName: c.SystemName, EmulatorConfig: c.EmulatorConfig}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownBackendConfig, cfg)
	}

	return json.Marshal(env)
}

// UnmarshalBackendConfig decodes a tagged JSON envelope. Unknown or missing
// discriminators yield ErrUnknownBackendConfig.
func UnmarshalBackendConfig(data []byte) (BackendConfig, error) {
	var env backendEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode backend config: %w", err)
	}

	switch env.Type {
	case BackendTypeSelene:
		return SeleneConfig{NQubits: env.NQubits}, nil
	case BackendTypeHelios:
		return HeliosConfig{SystemName: env.SystemName, EmulatorConfig: env.EmulatorConfig}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackendConfig, env.Type)
	}
}

// MarshalJSON encodes the embedded backend config as a tagged envelope.
func (j JobRef) MarshalJSON() ([]byte, error) {
	type alias JobRef
	aux := struct {
		alias
		BackendConfig json.RawMessage `json:"backend_config,omitempty"`
	}{alias: alias(j)}

	if j.BackendConfig != nil {
		raw, err := MarshalBackendConfig(j.BackendConfig)
		if err != nil {
			return nil, err
		}
		aux.BackendConfig = raw
	}

	return json.Marshal(aux)
}

// UnmarshalJSON decodes the tagged backend config envelope.
func (j *JobRef) UnmarshalJSON(data []byte) error {
	type alias JobRef
	aux := struct {
		*alias
		BackendConfig json.RawMessage `json:"backend_config,omitempty"`
	}{alias: (*alias)(j)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.BackendConfig) == 0 || string(aux.BackendConfig) == "null" {
		j.BackendConfig = nil
		return nil
	}

	cfg, err := UnmarshalBackendConfig(aux.BackendConfig)
	if err != nil {
		return err
	}
	j.BackendConfig = cfg

	return nil
}
