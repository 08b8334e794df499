package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	DefaultAccessTTL  = 5 * time.Minute
	DefaultRefreshTTL = 24 * time.Hour
)

type Claims struct {
	TokenType string `json:"token_type"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// RefreshToken is a decoded, verified refresh token together with the
// lifetimes the authority applies to the tokens it issues.
type RefreshToken struct {
	Claims               *Claims
	AccessTokenLifetime  time.Duration
	RefreshTokenLifetime time.Duration
}

// Authority mints and verifies HS256 access/refresh token pairs.
type Authority struct {
	signingKey []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type Option func(*Authority)

func WithLifetimes(access, refresh time.Duration) Option {
	return func(a *Authority) {
		if access > 0 {
			a.accessTTL = access
		}
		if refresh > 0 {
			a.refreshTTL = refresh
		}
	}
}

func WithIssuer(issuer string) Option {
	return func(a *Authority) {
		a.issuer = issuer
	}
}

func withClock(now func() time.Time) Option {
	return func(a *Authority) {
		a.now = now
	}
}

func NewAuthority(signingKey string, opts ...Option) *Authority {
	a := &Authority{
		signingKey: []byte(signingKey),
		accessTTL:  DefaultAccessTTL,
		refreshTTL: DefaultRefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Authority) AccessTokenLifetime() time.Duration  { return a.accessTTL }
func (a *Authority) RefreshTokenLifetime() time.Duration { return a.refreshTTL }

// Issue mints a fresh refresh token for account and an access token derived from it.
func (a *Authority) Issue(account *domain.Account) (domain.TokenPair, error) {
	if account == nil {
		return domain.TokenPair{}, errors.New("issue tokens: nil account")
	}

	refresh, err := a.sign(TypeRefresh, account.ID, account.Username, a.refreshTTL)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	access, err := a.sign(TypeAccess, account.ID, account.Username, a.accessTTL)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	return domain.TokenPair{Refresh: refresh, Access: access}, nil
}

// DecodeRefresh verifies a refresh token string.
func (a *Authority) DecodeRefresh(token string) (*RefreshToken, error) {
	claims, err := a.parse(token, TypeRefresh)
	if err != nil {
		return nil, err
	}
	return &RefreshToken{
		Claims:               claims,
		AccessTokenLifetime:  a.accessTTL,
		RefreshTokenLifetime: a.refreshTTL,
	}, nil
}

// Refresh mints a new access token for the holder of a valid refresh token.
func (a *Authority) Refresh(refresh string) (string, error) {
	claims, err := a.parse(refresh, TypeRefresh)
	if err != nil {
		return "", err
	}
	access, err := a.sign(TypeAccess, claims.UserID, claims.Username, a.accessTTL)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

func (a *Authority) sign(tokenType string, userID int64, username string, ttl time.Duration) (string, error) {
	now := a.now()
	claims := Claims{
		TokenType: tokenType,
		UserID:    userID,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.signingKey)
}

func (a *Authority) parse(token, wantType string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.signingKey, nil
	}, jwt.WithTimeFunc(a.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("%w: token has wrong type %q", ErrInvalidToken, claims.TokenType)
	}
	return claims, nil
}
