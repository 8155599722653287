//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRoundTrip(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	userID := uuid.New()

	token, err := manager.Generate(userID, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestManagerValidate(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	userID := uuid.New()

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := jwt.NewManager("other-secret")
		token, err := other.Generate(userID, time.Hour)
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token, err := manager.Generate(userID, -time.Minute)
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := manager.Validate("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
