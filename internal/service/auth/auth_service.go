package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/Domenick1991/flightasset/internal/kafka"
	"github.com/Domenick1991/flightasset/internal/tokens"
	"github.com/Domenick1991/flightasset/internal/validation"
	"github.com/rs/zerolog"
)

type AuthUseCase interface {
	Register(ctx context.Context, req validation.RegistrationRequest) (*domain.Account, error)
	Login(ctx context.Context, req validation.LoginRequest) (*domain.CredentialResponse, error)
	Refresh(ctx context.Context, req validation.RefreshRequest) (*domain.TokenInfo, error)
}

type UserStore interface {
	Create(ctx context.Context, account domain.NewAccount) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
}

type TokenAuthority interface {
	TokenDecoder
	Issue(account *domain.Account) (domain.TokenPair, error)
	Refresh(refresh string) (string, error)
}

type EventProducer interface {
	PublishWithRetry(ctx context.Context, topic, key string, payload any, maxRetries int) error
}

const publishRetries = 3

type AuthService struct {
	users     UserStore
	authority TokenAuthority
	producer  EventProducer
	topic     string
	log       zerolog.Logger
	now       func() time.Time
}

type AuthServiceOption func(*AuthService)

// WithAccountEvents publishes an AccountEvent to topic after each registration.
func WithAccountEvents(producer EventProducer, topic string) AuthServiceOption {
	return func(s *AuthService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithLogger(log zerolog.Logger) AuthServiceOption {
	return func(s *AuthService) {
		s.log = log
	}
}

func NewAuthService(users UserStore, authority TokenAuthority, opts ...AuthServiceOption) *AuthService {
	s := &AuthService{
		users:     users,
		authority: authority,
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the payload and creates the account. The store is not
// touched unless validation passes.
func (s *AuthService) Register(ctx context.Context, req validation.RegistrationRequest) (*domain.Account, error) {
	input, err := validation.ValidateRegistration(req)
	if err != nil {
		return nil, err
	}

	account, err := s.users.Create(ctx, input.NewAccount())
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, validation.UsernameTaken()
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.publishRegistered(ctx, account)
	return account, nil
}

func (s *AuthService) Login(ctx context.Context, req validation.LoginRequest) (*domain.CredentialResponse, error) {
	username, password, err := validation.ValidateLogin(req)
	if err != nil {
		return nil, err
	}

	account, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	pair, err := s.authority.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	return ShapeCredentials(s.authority, pair)
}

func (s *AuthService) Refresh(_ context.Context, req validation.RefreshRequest) (*domain.TokenInfo, error) {
	refresh, err := validation.ValidateRefresh(req)
	if err != nil {
		return nil, err
	}

	decoded, err := s.authority.DecodeRefresh(refresh)
	if err != nil {
		return nil, fmt.Errorf("decode refresh token: %w", err)
	}

	access, err := s.authority.Refresh(refresh)
	if err != nil {
		return nil, fmt.Errorf("refresh access token: %w", err)
	}

	return &domain.TokenInfo{
		Token:     access,
		ExpiresIn: tokens.FormatLifetime(decoded.AccessTokenLifetime),
	}, nil
}

func (s *AuthService) publishRegistered(ctx context.Context, account *domain.Account) {
	if s.producer == nil {
		return
	}

	event := kafka.AccountEvent{
		Type:       kafka.EventAccountRegistered,
		AccountID:  account.ID,
		Username:   account.Username,
		Email:      account.Email,
		FirstName:  account.FirstName,
		LastName:   account.LastName,
		OccurredAt: s.now().UTC(),
	}
	if err := s.producer.PublishWithRetry(ctx, s.topic, account.Username, event, publishRetries); err != nil {
		s.log.Warn().Err(err).Str("username", account.Username).Msg("failed to publish account event")
	}
}

var _ AuthUseCase = (*AuthService)(nil)
