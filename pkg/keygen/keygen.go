// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package keygen derives unique, URL-safe keys for catalog entities.

A key is the stable human-readable identifier a product keeps for its whole
lifetime (e.g., "hydrating-serum"). It is derived once, at creation time, from
the default-language title and never regenerated on update.

Collision Resolution:

  - The base slug is probed against existing keys.
  - On collision the suffixes "-1", "-2", ... are tried in order.
  - The probe callback runs inside the caller's database transaction, so
    probe-then-insert is race-free under concurrent creates.
*/
package keygen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Chenar-ai/elegant-backend/pkg/slug"
)

// randomTokenLength is the number of hex characters used when no usable
// title is available to slugify.
const randomTokenLength = 8

// ExistsFunc reports whether a candidate key is already taken.
//
// Implementations must query within the same transaction that will perform
// the eventual insert; keygen itself holds no locks.
type ExistsFunc func(key string) (bool, error)

// Generate derives a unique key from a candidate title.
//
// If the title slugifies to an empty string (empty, whitespace, or pure
// symbols), a short random hex token is used as the base instead, so a valid
// base always exists. It then linearly probes exists until a free key is
// found: base, base-1, base-2, ...
func Generate(title string, exists ExistsFunc) (string, error) {
	base := slug.From(title)
	if base == "" {
		base = randomToken()
	}

	key := base
	for i := 1; ; i++ {
		taken, err := exists(key)
		if err != nil {
			return "", fmt.Errorf("keygen: exists probe for %q: %w", key, err)
		}
		if !taken {
			return key, nil
		}
		key = fmt.Sprintf("%s-%d", base, i)
	}
}

// randomToken returns a short random hex string usable as a base key.
func randomToken() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return hex[:randomTokenLength]
}
