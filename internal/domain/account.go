package domain

import (
	"errors"
	"time"
)

var (
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Account is a registered user as persisted by the user store.
type Account struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewAccount carries the fields needed to create an account. Password is plain
// text; the store hashes it before persisting.
type NewAccount struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type RegistrationInput struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}

func (in RegistrationInput) NewAccount() NewAccount {
	return NewAccount{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.Password,
	}
}
