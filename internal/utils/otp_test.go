package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	code, err := GenerateOTPCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", code)
	}
}

func TestGenerateOTPCode_MinimumLength(t *testing.T) {
	// Lengths below four are clamped up
	code, err := GenerateOTPCode(1)
	require.NoError(t, err)
	assert.Len(t, code, 4)
}

func TestGenerateOTPCode_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateOTPCode(6)
		require.NoError(t, err)
		seen[code] = true
	}
	// 20 identical six-digit codes would indicate a broken generator
	assert.Greater(t, len(seen), 1)
}
