package signet_test

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signet"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("missing secret", func(t *testing.T) {
		_, err := signet.New("")
		assert.ErrorIs(t, err, signet.ErrMissingSecret)
	})

	t.Run("defaults applied", func(t *testing.T) {
		svc, err := signet.New(testSecret, signet.WithClock(fixedClock(issuedAt)))
		require.NoError(t, err)

		token, err := svc.Sign(signet.Claims{"sub": "user-1"})
		require.NoError(t, err)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, json.Number(strconv.FormatInt(issuedAt.Add(signet.DefaultExpiry).Unix(), 10)), claims["iat"])
	})

	t.Run("custom token type label", func(t *testing.T) {
		svc, err := signet.New(testSecret, signet.WithTokenType("AT"))
		require.NoError(t, err)

		token, err := svc.Sign(signet.Claims{"sub": "user-1"})
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("negative expiry ignored", func(t *testing.T) {
		svc, err := signet.New(testSecret,
			signet.WithExpiry(-time.Hour),
			signet.WithClock(fixedClock(issuedAt)),
		)
		require.NoError(t, err)

		token, err := svc.Sign(signet.Claims{"sub": "user-1"})
		require.NoError(t, err)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, json.Number(strconv.FormatInt(issuedAt.Add(signet.DefaultExpiry).Unix(), 10)), claims["iat"])
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		svc, err := signet.NewFromConfig(signet.Config{
			Secret:    testSecret,
			Algorithm: signet.HS384,
			TokenType: "JWT",
			Expiry:    time.Hour,
		})
		require.NoError(t, err)

		token, err := svc.Sign(signet.Claims{"sub": "user-1"})
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("zero value fields fall back to defaults", func(t *testing.T) {
		svc, err := signet.NewFromConfig(signet.Config{Secret: testSecret})
		require.NoError(t, err)

		token, err := svc.Sign(signet.Claims{"sub": "user-1"})
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := signet.NewFromConfig(signet.Config{Algorithm: signet.HS256})
		assert.ErrorIs(t, err, signet.ErrMissingSecret)
	})

	t.Run("options override config", func(t *testing.T) {
		svc, err := signet.NewFromConfig(signet.Config{
			Secret: testSecret,
			Expiry: time.Hour,
		},
			signet.WithExpiry(2*time.Hour),
			signet.WithClock(fixedClock(issuedAt)),
		)
		require.NoError(t, err)

		token, err := svc.Sign(signet.Claims{"sub": "user-1"})
		require.NoError(t, err)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, json.Number(strconv.FormatInt(issuedAt.Add(2*time.Hour).Unix(), 10)), claims["iat"])
	})
}

func TestNewFromEnv(t *testing.T) {
	// t.Setenv is incompatible with t.Parallel.

	t.Run("loads settings from environment", func(t *testing.T) {
		t.Setenv("SIGNET_SECRET", "env-secret")
		t.Setenv("SIGNET_ALG", "HS512")
		t.Setenv("SIGNET_EXPIRY", "90m")

		svc, err := signet.NewFromEnv(signet.WithClock(fixedClock(issuedAt)))
		require.NoError(t, err)

		token, err := svc.Sign(signet.Claims{"sub": "user-1"})
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, json.Number(strconv.FormatInt(issuedAt.Add(90*time.Minute).Unix(), 10)), claims["iat"])

		header, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[0])
		require.NoError(t, err)
		assert.Equal(t, `{"alg":"HS512","typ":"JWT"}`, string(header))
	})

	t.Run("missing secret fails", func(t *testing.T) {
		t.Setenv("SIGNET_SECRET", "")

		_, err := signet.NewFromEnv()
		assert.Error(t, err)
	})

	t.Run("invalid algorithm fails", func(t *testing.T) {
		t.Setenv("SIGNET_SECRET", "env-secret")
		t.Setenv("SIGNET_ALG", "RS256")

		_, err := signet.NewFromEnv()
		assert.Error(t, err)
	})
}
