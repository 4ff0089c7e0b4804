package commands

import (
	"context"
	"time"

	"grooming-booking/internal/domain/customer"
	"grooming-booking/internal/infra"
	"grooming-booking/internal/pkg/clock"
	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUsernameTaken      = errs.New("username already taken")
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type TokenIssuer interface {
	GenerateToken(customerID uuid.UUID, username string) (string, error)
	TokenDuration() time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type RegisterRequest struct {
	Username  string
	Password  string
	FirstName string
}

type LoginRequest struct {
	Username string
	Password string
}

type CustomerProfile struct {
	ID        uuid.UUID
	Username  string
	FirstName string
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Customer  CustomerProfile
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	hasher PasswordHasher
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, hasher PasswordHasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		hasher: hasher,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	username, err := customer.NewUsername(req.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	firstName, err := customer.NewFirstName(req.FirstName)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	pw, err := customer.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, err
	}

	var created *customer.Customer
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Customers().Create(ctx, tx.DB(), customer.NewCustomer(username, firstName, hash, a.clock.Now()))
		if derr != nil {
			return derr
		}
		created = c
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrUsernameTaken)
		}
		return nil, err
	}

	return a.issue(CustomerProfile{
		ID:        created.ID(),
		Username:  created.Username().Value(),
		FirstName: created.FirstName().Value(),
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	snap, err := a.uow.CommandReads().CustomerByUsername(ctx, req.Username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a password mismatch to prevent username enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(snap.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issue(CustomerProfile{
		ID:        snap.ID,
		Username:  snap.Username,
		FirstName: snap.FirstName,
	})
}

func (a *authCommandsImpl) issue(profile CustomerProfile) (*AuthResult, error) {
	token, err := a.tokens.GenerateToken(profile.ID, profile.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		Token:     token,
		ExpiresAt: a.clock.Now().Add(a.tokens.TokenDuration()),
		Customer:  profile,
	}, nil
}
