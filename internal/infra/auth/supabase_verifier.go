// Package auth verifies bearer credentials against the configured identity provider.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"whatsorder/config"
	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
)

// supabaseUser is the subset of the /auth/v1/user response we read.
type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type supabaseVerifier struct {
	userURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSupabaseVerifier asks the provider to resolve every token; it never
// trusts a token it has not just checked remotely.
func NewSupabaseVerifier(projectURL, apiKey string, timeout time.Duration, logger *slog.Logger) service.IdentityVerifier {
	return &supabaseVerifier{
		userURL:    strings.TrimRight(projectURL, "/") + "/auth/v1/user",
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (v *supabaseVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity provider unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, service.ErrInvalidCredential
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "decode identity provider response")
	}
	if user.ID == "" {
		return nil, service.ErrInvalidCredential
	}

	return &entity.Identity{
		Subject:  user.ID,
		Email:    user.Email,
		Provider: config.IdentityProviderSupabase,
	}, nil
}
