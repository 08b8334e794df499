package auth

import (
	"fmt"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/Domenick1991/flightasset/internal/tokens"
)

type TokenDecoder interface {
	DecodeRefresh(token string) (*tokens.RefreshToken, error)
}

// ShapeCredentials builds the login payload for a freshly issued pair.
//
// The lifetimes come from the decoded refresh token and are crossed: refresh
// carries the access lifetime and access carries the refresh lifetime.
func ShapeCredentials(decoder TokenDecoder, pair domain.TokenPair) (*domain.CredentialResponse, error) {
	decoded, err := decoder.DecodeRefresh(pair.Refresh)
	if err != nil {
		return nil, fmt.Errorf("decode refresh token: %w", err)
	}

	return &domain.CredentialResponse{
		Refresh: domain.TokenInfo{
			Token:     pair.Refresh,
			ExpiresIn: tokens.FormatLifetime(decoded.AccessTokenLifetime),
		},
		Access: domain.TokenInfo{
			Token:     pair.Access,
			ExpiresIn: tokens.FormatLifetime(decoded.RefreshTokenLifetime),
		},
	}, nil
}
