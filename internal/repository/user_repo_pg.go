package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightasset/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

type UserRepository interface {
	Create(ctx context.Context, account domain.NewAccount) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

type PGUserRepository struct {
	db   *pgxpool.Pool
	cost int
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db, cost: bcrypt.DefaultCost}
}

// Create hashes the password and inserts the account.
func (r *PGUserRepository) Create(ctx context.Context, account domain.NewAccount) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), r.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &domain.Account{
		Username:     account.Username,
		Email:        account.Email,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		PasswordHash: string(hash),
	}
	err = r.db.QueryRow(ctx, `INSERT INTO accounts (username, email, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`, a.Username, a.Email, a.FirstName, a.LastName, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("create account %q: %w", account.Username, domain.ErrAccountExists)
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

func (r *PGUserRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT id, username, email, first_name, last_name, password_hash, created_at FROM accounts WHERE username=$1`, username)
	var a domain.Account
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.FirstName, &a.LastName, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Authenticate returns the account when password matches its stored hash.
func (r *PGUserRepository) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	a, err := r.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	if err := CheckPassword(a.PasswordHash, password); err != nil {
		return nil, err
	}
	return a, nil
}

// CheckPassword compares a bcrypt hash with a candidate password.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrInvalidCredentials
		}
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
