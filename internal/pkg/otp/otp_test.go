package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SixDigits(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, _, err := New(10 * time.Minute)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q contains non-digit", code)
		}
		assert.NotEqual(t, byte('0'), code[0], "code %q has a leading zero", code)
	}
}

func TestNew_Expiry(t *testing.T) {
	before := time.Now()
	_, expiresAt, err := New(10 * time.Minute)
	require.NoError(t, err)
	after := time.Now()

	assert.False(t, expiresAt.Before(before.Add(10*time.Minute)))
	assert.False(t, expiresAt.After(after.Add(10*time.Minute)))
}

func TestNew_CodesVary(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, _, err := New(time.Minute)
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from 900k values colliding down to 1 would mean a broken source.
	assert.Greater(t, len(seen), 1)
}
