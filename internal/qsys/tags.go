// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package qsys

import (
	"errors"
	"fmt"
	"strings"
)

// UserTagPrefix marks entries produced by user result calls in the raw
// encoding. Entries with other prefixes are runtime metadata.
const UserTagPrefix = "USER"

// TagKind is the declared type of a raw result entry.
type TagKind string

const (
	TagBool  TagKind = "BOOL"
	TagInt   TagKind = "INT"
	TagUint  TagKind = "UINT"
	TagFloat TagKind = "FLOAT"
	TagBits  TagKind = "BITARRAY"
)

var ErrMalformedTag = errors.New("malformed raw result tag")

// RawTag is a parsed raw entry tag such as "USER:BOOL:teleported".
type RawTag struct {
	Origin string
	Kind   TagKind
	Label  string
}

// String renders the tag back into its raw form.
func (t RawTag) String() string {
	return t.Origin + ":" + string(t.Kind) + ":" + t.Label
}

// IsUser reports whether the entry was produced by a user result call.
func (t RawTag) IsUser() bool {
	return t.Origin == UserTagPrefix
}

// UserTag builds the raw tag for a user result of the given kind.
func UserTag(kind TagKind, label string) string {
	return RawTag{Origin: UserTagPrefix, Kind: kind, Label: label}.String()
}

// ParseRawTag splits a raw tag into origin, kind and label. The label may
// itself contain colons.
func ParseRawTag(tag string) (RawTag, error) {
	parts := strings.SplitN(tag, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return RawTag{}, fmt.Errorf("%w: %q", ErrMalformedTag, tag)
	}

	kind := TagKind(parts[1])
	switch kind {
	case TagBool, TagInt, TagUint, TagFloat, TagBits:
	default:
		return RawTag{}, fmt.Errorf("%w: unknown kind %q in %q", ErrMalformedTag, parts[1], tag)
	}

	return RawTag{Origin: parts[0], Kind: kind, Label: parts[2]}, nil
}
