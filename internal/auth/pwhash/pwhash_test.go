package pwhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndValidate(t *testing.T) {
	ph, err := New(16, 100000)
	require.NoError(t, err)

	hash, err := ph.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NoError(t, ph.Validate("correct horse battery staple", hash))
	assert.Error(t, ph.Validate("wrong password", hash))

	// hashes are salted, two hashes of one password differ
	hash2, err := ph.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
	assert.NoError(t, ph.Validate("correct horse battery staple", hash2))
}

func TestValidate_Malformed(t *testing.T) {
	ph, err := New(16, 100000)
	require.NoError(t, err)

	assert.Error(t, ph.Validate("pw", "not-a-hash"))
	assert.Error(t, ph.Validate("pw", "abc$def$ghi"))
}

func TestNew_Bounds(t *testing.T) {
	_, err := New(4, 100000)
	assert.Error(t, err)

	_, err = New(16, 10)
	assert.Error(t, err)
}
