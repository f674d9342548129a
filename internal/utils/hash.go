// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// DigestHeader carries the keyed BLAKE2b-256 digest of a request or response
// body, hex encoded.
const DigestHeader = "X-Content-Digest"

// Hasher computes keyed BLAKE2b-256 digests. Hash instances are pooled.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a hasher for key. Keys longer than 64 bytes are
// rejected by BLAKE2b.
func NewHasher(key string) (*Hasher, error) {
	if _, err := blake2b.New256([]byte(key)); err != nil {
		return nil, fmt.Errorf("error creating hasher: %w", err)
	}

	h := &Hasher{}
	h.pool.New = func() any {
		// key length was checked above
		hh, _ := blake2b.New256([]byte(key))
		return hh
	}
	return h, nil
}

// Hash returns the raw digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	hh := h.pool.Get().(hash.Hash)
	hh.Reset()

	hh.Write(data)
	sum := hh.Sum(nil)

	hh.Reset()
	h.pool.Put(hh)

	return sum
}

// HashString returns the hex encoded digest of data.
func (h *Hasher) HashString(data []byte) string {
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether digest is the hex encoded digest of data.
func (h *Hasher) Verify(data []byte, digest string) bool {
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, h.Hash(data)) == 1
}
