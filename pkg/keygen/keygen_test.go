// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package keygen_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chenar-ai/elegant-backend/pkg/keygen"
)

// takenSet builds an ExistsFunc over a fixed set of occupied keys.
func takenSet(keys ...string) keygen.ExistsFunc {
	occupied := make(map[string]bool, len(keys))
	for _, k := range keys {
		occupied[k] = true
	}
	return func(key string) (bool, error) {
		return occupied[key], nil
	}
}

/*
TestGenerate_CollisionSequence verifies the base, base-1, base-2, ... probe order.
*/
func TestGenerate_CollisionSequence(t *testing.T) {
	tests := []struct {
		name  string
		title string
		taken []string
		want  string
	}{
		{"free_base", "Hydrating Serum", nil, "hydrating-serum"},
		{"first_collision", "Hydrating Serum", []string{"hydrating-serum"}, "hydrating-serum-1"},
		{"second_collision", "Hydrating Serum", []string{"hydrating-serum", "hydrating-serum-1"}, "hydrating-serum-2"},
		{"gap_is_not_skipped", "Lips", []string{"lips", "lips-2"}, "lips-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := keygen.Generate(tt.title, takenSet(tt.taken...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

/*
TestGenerate_RandomBase checks the random hex fallback when no title is usable.
*/
func TestGenerate_RandomBase(t *testing.T) {
	hexToken := regexp.MustCompile(`^[0-9a-f]{8}$`)

	for _, title := range []string{"", "   ", "!!!"} {
		key, err := keygen.Generate(title, takenSet())
		require.NoError(t, err)
		assert.Regexp(t, hexToken, key)
	}

	// Two calls must not collide with each other in practice.
	first, err := keygen.Generate("", takenSet())
	require.NoError(t, err)
	second, err := keygen.Generate("", takenSet(first))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

/*
TestGenerate_ProbeError ensures probe failures surface to the caller.
*/
func TestGenerate_ProbeError(t *testing.T) {
	probeErr := errors.New("connection reset")

	_, err := keygen.Generate("Hydrating Serum", func(string) (bool, error) {
		return false, probeErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, probeErr)
}
