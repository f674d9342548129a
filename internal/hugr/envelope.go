// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hugr

import (
	"bytes"
	"errors"
)

// EnvelopeMagic starts every enveloped artifact. It is followed by one format
// byte and one flags byte.
var EnvelopeMagic = []byte("HUGRiHJv")

const envelopeHeaderLen = 10

var (
	ErrEmptyArtifact       = errors.New("empty program artifact")
	ErrTruncatedEnvelope   = errors.New("truncated envelope header")
	ErrUnsupportedEncoding = errors.New("program payload is not JSON encoded")
)

// Payload strips the envelope header, if any, and returns the body.
func Payload(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyArtifact
	}

	if !bytes.HasPrefix(data, EnvelopeMagic) {
		return data, nil
	}
	if len(data) < envelopeHeaderLen {
		return nil, ErrTruncatedEnvelope
	}

	return data[envelopeHeaderLen:], nil
}

// Wrap prefixes payload with an envelope header carrying format and flags.
func Wrap(format, flags byte, payload []byte) []byte {
	out := make([]byte, 0, envelopeHeaderLen+len(payload))
	out = append(out, EnvelopeMagic...)
	out = append(out, format, flags)
	return append(out, payload...)
}

func isJSON(payload []byte) bool {
	trimmed := bytes.TrimLeft(payload, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
