package identity

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimsSource определяет пользователя только по claims самого токена.
// Подпись уже проверена middleware на границе, здесь токен только декодируется.
type ClaimsSource struct {
	parser *jwt.Parser
}

func NewClaimsSource() *ClaimsSource {
	return &ClaimsSource{parser: jwt.NewParser()}
}

func (s *ClaimsSource) Identify(_ context.Context, credential string) (Identity, error) {
	claims, err := decodeClaims(s.parser, credential)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		ID:         stringClaim(claims, "sub"),
		Name:       stringClaim(claims, "name"),
		GivenName:  stringClaim(claims, "given_name"),
		FamilyName: stringClaim(claims, "family_name"),
		Email:      stringClaim(claims, "email"),
	}, nil
}

func decodeClaims(p *jwt.Parser, credential string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := p.ParseUnverified(credential, claims); err != nil {
		return nil, &ResolutionError{Err: err}
	}
	if stringClaim(claims, "sub") == "" {
		return nil, resolutionErrorf("token has no sub claim")
	}
	return claims, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}
