package utils

import (
	"testing"

	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperAuthSecret, "") })

	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: "user-1"})
	require.NoError(t, err)

	parsed, err := ParseAuthToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestParseAuthToken_RejectsWrongSecret(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "first-secret")
	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: "user-1"})
	require.NoError(t, err)

	viper.Set(constants.ViperAuthSecret, "second-secret")
	t.Cleanup(func() { viper.Set(constants.ViperAuthSecret, "") })

	_, err = ParseAuthToken(signed)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthToken_RejectsEmptyUser(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperAuthSecret, "") })

	signed, err := GenerateAuthToken(&AuthTokenWrapper{})
	require.NoError(t, err)

	_, err = ParseAuthToken(signed)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}
