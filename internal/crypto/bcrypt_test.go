package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{name: "min cost", cost: bcrypt.MinCost},
		{name: "default cost", cost: 10},
		{name: "below min", cost: bcrypt.MinCost - 1, wantErr: true},
		{name: "above max", cost: bcrypt.MaxCost + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewBcryptHasher(tt.cost)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHashCost)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", digest)
	assert.True(t, h.Verify("s3cret", digest))
	assert.False(t, h.Verify("S3cret", digest))
	assert.False(t, h.Verify("", digest))

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestBcryptHasher_VerifyMalformedDigest(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, h.Verify("password", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("password", ""))
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
