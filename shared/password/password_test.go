package password_test

import (
	"hotel/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid password", input: "s3cret-Pass"},
		{name: "unicode password", input: "пароль-密码"},
		{name: "empty password", input: "", wantErr: password.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.input, hash)
			assert.True(t, strings.HasPrefix(hash, "$2"))

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, password.DefaultCost, cost)
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)

	second, err := password.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		hash    string
		wantErr error
	}{
		{name: "match", input: "correct horse", hash: hash},
		{name: "mismatch", input: "battery staple", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", input: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", input: "correct horse", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.input, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	err := password.Verify("anything", "not-a-bcrypt-hash")

	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrInvalidPassword)
}

func TestVerifyMissing(t *testing.T) {
	assert.ErrorIs(t, password.VerifyMissing("whatever"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.VerifyMissing(""), password.ErrInvalidPassword)
}

func TestHashTooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", 73))

	assert.Error(t, err)
}
