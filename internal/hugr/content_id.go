// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hugr

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ContentID returns the CIDv1 (raw codec, sha2-256) of an artifact. Identical
// uploads share a content id and therefore a single stored blob.
func ContentID(data []byte) (string, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("hash program artifact: %w", err)
	}

	return cid.NewCidV1(cid.Raw, sum).String(), nil
}

// ValidContentID reports whether s decodes as a CID. It guards file paths
// built from content ids.
func ValidContentID(s string) bool {
	_, err := cid.Decode(s)
	return err == nil
}
