package auth_test

import (
	"strings"
	"testing"

	"sepulka/internal/adapters/out/auth"
	"sepulka/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	require.NoError(t, hasher.Compare(hash, "correct horse"))
	require.ErrorIs(t, hasher.Compare(hash, "wrong horse"), errs.ErrAuthenticationRequired)
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	hash, err := auth.NewBcryptHasher(0).Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
