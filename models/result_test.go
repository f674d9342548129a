// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQsysResult_JSONEntriesArePairs(t *testing.T) {
	in := `{"results":[{"entries":[["teleported",1],["angle",0.5],["reg",[1,0,1]]]}]}`

	var r QsysResult
	require.NoError(t, json.Unmarshal([]byte(in), &r))
	require.Equal(t, 1, r.NShots())

	entries := r.Results[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Tag: "teleported", Value: IntValue(1)}, entries[0])
	assert.Equal(t, KindFloat, entries[1].Value.Kind())
	assert.Equal(t, []bool{true, false, true}, entries[2].Value.Bits())

	out, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestDataValue_FloatKeepsDecimalPoint(t *testing.T) {
	out, err := json.Marshal(FloatValue(2))
	require.NoError(t, err)
	assert.Equal(t, "2.0", string(out))

	var v DataValue
	require.NoError(t, json.Unmarshal(out, &v))
	assert.Equal(t, KindFloat, v.Kind())
}

func TestParseResultVersion(t *testing.T) {
	v, err := ParseResultVersion("")
	require.NoError(t, err)
	assert.Equal(t, ResultVersionDefault, v)

	v, err = ParseResultVersion("4")
	require.NoError(t, err)
	assert.Equal(t, ResultVersionRaw, v)

	_, err = ParseResultVersion("5")
	assert.ErrorIs(t, err, ErrDecodeVersionUnsupported)

	_, err = ParseResultVersion("latest")
	assert.ErrorIs(t, err, ErrDecodeVersionUnsupported)
}

func TestExecutionPayload_Variants(t *testing.T) {
	payloads := []ExecutionPayload{&QsysResult{}, &RawQsysResult{}}

	for _, p := range payloads {
		switch r := p.(type) {
		case *QsysResult:
			assert.Equal(t, ResultVersionDefault, r.Version())
		case *RawQsysResult:
			assert.Equal(t, ResultVersionRaw, r.Version())
		default:
			t.Fatalf("unexpected payload %T", p)
		}
	}
}

func TestBackendConfig_RoundTripThroughJobRef(t *testing.T) {
	configs := []BackendConfig{
		SeleneConfig{NQubits: 5},
		HeliosConfig{SystemName: "Helios-1E-lite", EmulatorConfig: &HeliosEmulatorConfig{NQubits: 5}},
	}

	for _, cfg := range configs {
		t.Run(cfg.BackendType(), func(t *testing.T) {
			ref := JobRef{ID: "job", BackendConfig: cfg}

			data, err := json.Marshal(ref)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"type":"`+cfg.BackendType()+`"`)

			var decoded JobRef
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, cfg, decoded.BackendConfig)
			assert.Equal(t, 5, decoded.BackendConfig.QubitCapacity())
		})
	}
}

func TestUnmarshalBackendConfig_Unknown(t *testing.T) {
	_, err := UnmarshalBackendConfig([]byte(`{"type":"QuantinuumConfig","device_name":"H1-1E"}`))
	assert.ErrorIs(t, err, ErrUnknownBackendConfig)

	var req ExecuteJobRequest
	err = json.Unmarshal([]byte(`{"programs":["p"],"n_shots":[1]}`), &req)
	assert.ErrorIs(t, err, ErrUnknownBackendConfig)
}

func TestValidateBackendConfig(t *testing.T) {
	assert.NoError(t, ValidateBackendConfig(SeleneConfig{NQubits: 5}))
	assert.ErrorIs(t, ValidateBackendConfig(SeleneConfig{}), ErrUnknownBackendConfig)
	assert.ErrorIs(t, ValidateBackendConfig(HeliosConfig{SystemName: "Helios-1E-lite"}), ErrUnknownBackendConfig)
	assert.ErrorIs(t, ValidateBackendConfig(nil), ErrUnknownBackendConfig)
}

func TestErrorCode_RoundTrip(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrResultNotReady)

	code := ErrorCode(wrapped)
	assert.Equal(t, "result_not_ready", code)
	assert.Equal(t, ErrResultNotReady, ErrorFromCode(code))
	assert.Equal(t, "internal", ErrorCode(errors.New("boom")))
	assert.Nil(t, ErrorFromCode("internal"))
}
