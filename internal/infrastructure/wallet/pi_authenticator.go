package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"choco_checkout/internal/config"
	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	ErrMissingAccessToken = errors.New("missing wallet access token")
	ErrInvalidAccessToken = errors.New("wallet access token rejected")
	ErrWalletUnavailable  = errors.New("wallet authentication service unavailable")
)

// PiAuthenticator verifies wallet access tokens against the Pi Platform /me endpoint.
type PiAuthenticator struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IWalletAuthenticator = (*PiAuthenticator)(nil)

func NewPiAuthenticator(cfg config.PiConfig) *PiAuthenticator {
	return &PiAuthenticator{
		baseURL:  cfg.BaseURL,
		mockMode: cfg.Mock,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// WithHTTPClient replaces the HTTP client, mainly for tests.
func (a *PiAuthenticator) WithHTTPClient(c *http.Client) *PiAuthenticator {
	a.client = c
	return a
}

type meResponse struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

func (a *PiAuthenticator) Authenticate(ctx context.Context, accessToken string) (entities.WalletSession, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return entities.WalletSession{}, ErrMissingAccessToken
	}
	if a.mockMode {
		log.Printf("[wallet][auth] mock session issued")
		return entities.WalletSession{UID: "mock-uid", Username: "mock-user", AccessToken: accessToken}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/v2/me", nil)
	if err != nil {
		return entities.WalletSession{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return entities.WalletSession{}, ctx.Err()
		}
		log.Printf("[wallet][auth] request failed err=%v", err)
		return entities.WalletSession{}, fmt.Errorf("%w: %v", ErrWalletUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return entities.WalletSession{}, fmt.Errorf("%w: %v", ErrWalletUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		log.Printf("[wallet][auth] token rejected status=%d", resp.StatusCode)
		return entities.WalletSession{}, ErrInvalidAccessToken
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		log.Printf("[wallet][auth] unexpected status=%d", resp.StatusCode)
		return entities.WalletSession{}, fmt.Errorf("%w: status %d", ErrWalletUnavailable, resp.StatusCode)
	}

	var me meResponse
	if err := json.Unmarshal(raw, &me); err != nil || me.UID == "" {
		log.Printf("[wallet][auth] malformed /me response")
		return entities.WalletSession{}, fmt.Errorf("%w: malformed response", ErrWalletUnavailable)
	}

	log.Printf("[wallet][auth] authenticated uid=%s", me.UID)
	return entities.WalletSession{UID: me.UID, Username: me.Username, AccessToken: accessToken}, nil
}
