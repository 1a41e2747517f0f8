package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"panel/config"
	domainerrors "panel/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	hash, err := hasher.Hash("Sup3rSecret!pw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Check("Sup3rSecret!pw", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	first, err := hasher.Hash("Sup3rSecret!pw")
	require.NoError(t, err)
	second, err := hasher.Hash("Sup3rSecret!pw")
	require.NoError(t, err)

	// Same input, distinct stored values; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Sup3rSecret!pw", first))
	assert.True(t, hasher.Check("Sup3rSecret!pw", second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("anything", ""))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Abcdefgh12", wantErr: false},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "no uppercase", password: "abcdefgh12", wantErr: true},
		{name: "no lowercase", password: "ABCDEFGH12", wantErr: true},
		{name: "no digits", password: "Abcdefghij", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_ValidatePasswordStrength_ConfiguredRules(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:      12,
			RequireSpecial: true,
		},
	}
	hasher := NewBcryptHasher(cfg)

	assert.Error(t, hasher.ValidatePasswordStrength("Abcdefgh12"), "below configured minimum length")
	assert.Error(t, hasher.ValidatePasswordStrength("Abcdefghijk1"), "missing special character")
	assert.NoError(t, hasher.ValidatePasswordStrength("Abcdefghij1!"))
}
