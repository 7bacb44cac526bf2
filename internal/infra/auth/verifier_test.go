package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"whatsorder/config"
	"whatsorder/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestSupabaseVerifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		switch r.Header.Get("Authorization") {
		case "Bearer good":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"id":"4f1c-user","email":"ada@example.com","aud":"authenticated"}`)
		case "Bearer broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	verifier := NewSupabaseVerifier(srv.URL+"/", "anon-key", time.Second, newDiscardLogger())
	ctx := context.Background()

	identity, err := verifier.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "4f1c-user", identity.Subject)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, config.IdentityProviderSupabase, identity.Provider)

	_, err = verifier.Verify(ctx, "expired")
	assert.ErrorIs(t, err, service.ErrInvalidCredential)

	_, err = verifier.Verify(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidCredential)
}

func TestJWTVerifier(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "authenticated")
	require.NoError(t, err)

	exp := time.Now().Add(time.Hour).Unix()
	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": "user-1", "email": "ada@example.com", "aud": "authenticated", "exp": exp,
	})

	identity, err := verifier.Verify(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.Subject)
	assert.Equal(t, "ada@example.com", identity.Email)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": "user-1", "aud": "authenticated", "exp": time.Now().Add(-time.Minute).Unix(),
		})},
		{"no expiry", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": "user-1", "aud": "authenticated",
		})},
		{"wrong audience", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": "user-1", "aud": "anon", "exp": exp,
		})},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), jwt.MapClaims{
			"sub": "user-1", "aud": "authenticated", "exp": exp,
		})},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{
			"sub": "user-1", "aud": "authenticated", "exp": exp,
		})},
		{"empty subject", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"aud": "authenticated", "exp": exp,
		})},
		{"garbage", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, service.ErrInvalidCredential)
		})
	}
}

func TestJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("", "")
	assert.Error(t, err)
}

func TestGoogleVerifier(t *testing.T) {
	payloads := map[string]*idtoken.Payload{
		"good": {
			Issuer: "https://accounts.google.com", Subject: "1098", Audience: "client-id",
			Claims: map[string]any{"email": "ada@example.com", "email_verified": true},
		},
		"foreign": {Issuer: "https://evil.example.com", Subject: "1098"},
		"unverified": {
			Issuer: "accounts.google.com", Subject: "1098",
			Claims: map[string]any{"email_verified": false},
		},
	}
	verifier := &googleVerifier{
		audience: "client-id",
		validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "client-id", audience)
			if p, ok := payloads[token]; ok {
				return p, nil
			}

			return nil, errors.New("idtoken: token expired")
		},
	}

	identity, err := verifier.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "1098", identity.Subject)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, config.IdentityProviderGoogle, identity.Provider)

	for _, token := range []string{"foreign", "unverified", "expired"} {
		_, err := verifier.Verify(context.Background(), token)
		assert.ErrorIs(t, err, service.ErrInvalidCredential, token)
	}
}

func TestNewIdentityVerifier(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.IdentityConfig
		wantErr bool
	}{
		{"supabase", &config.IdentityConfig{Provider: config.IdentityProviderSupabase, ProjectURL: "https://x.supabase.co", APIKey: "k"}, false},
		{"supabase without key", &config.IdentityConfig{Provider: config.IdentityProviderSupabase, ProjectURL: "https://x.supabase.co"}, true},
		{"jwt", &config.IdentityConfig{Provider: config.IdentityProviderJWT, JWTSecret: testSecret}, false},
		{"jwt without secret", &config.IdentityConfig{Provider: config.IdentityProviderJWT}, true},
		{"google", &config.IdentityConfig{Provider: config.IdentityProviderGoogle, Audience: "client-id"}, false},
		{"google without audience", &config.IdentityConfig{Provider: config.IdentityProviderGoogle}, true},
		{"unknown", &config.IdentityConfig{Provider: "ldap"}, true},
		{"missing", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier, err := NewIdentityVerifier(&config.Config{Identity: tt.cfg}, newDiscardLogger())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, verifier)
		})
	}
}
