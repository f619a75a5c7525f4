package identity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserInfoSource берёт sub из токена, а остальные сведения о пользователе
// из OIDC user-info endpoint провайдера.
type UserInfoSource struct {
	endpoint string
	client   *http.Client
	parser   *jwt.Parser
}

// NewUserInfoSource создаёт источник. client == nil: клиент с таймаутом 10s.
func NewUserInfoSource(endpoint string, client *http.Client) *UserInfoSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &UserInfoSource{endpoint: endpoint, client: client, parser: jwt.NewParser()}
}

type userInfoError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

func (s *UserInfoSource) Identify(ctx context.Context, credential string) (Identity, error) {
	claims, err := decodeClaims(s.parser, credential)
	if err != nil {
		return Identity{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return Identity{}, &ResolutionError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Identity{}, &ResolutionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Identity{}, &ResolutionError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ue userInfoError
		if json.Unmarshal(body, &ue) == nil && ue.Error != "" {
			if ue.Description != "" {
				return Identity{}, resolutionErrorf("%s: %s", ue.Error, ue.Description)
			}
			return Identity{}, resolutionErrorf("%s", ue.Error)
		}
		return Identity{}, resolutionErrorf("user info: %s %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var info Identity
	if err := json.Unmarshal(body, &info); err != nil {
		return Identity{}, &ResolutionError{Err: err}
	}
	// sub всегда берём из самого токена
	info.ID = stringClaim(claims, "sub")
	return info, nil
}
