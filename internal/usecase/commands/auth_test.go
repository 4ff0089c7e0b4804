//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grooming-booking/internal/domain/customer"
	"grooming-booking/internal/infra"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/clock"
	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/tests/common/builder"
	commandsmock "grooming-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	*fixture
	tokens  *commandsmock.MockTokenIssuer
	hasher  *commandsmock.MockPasswordHasher
	command commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	base := newFixture(t)
	ctrl := gomock.NewController(t)
	f := &authFixture{
		fixture: base,
		tokens:  commandsmock.NewMockTokenIssuer(ctrl),
		hasher:  commandsmock.NewMockPasswordHasher(ctrl),
	}
	f.tokens.EXPECT().TokenDuration().Return(time.Hour).AnyTimes()
	f.command = commands.NewAuthCommands(base.uow, f.tokens, f.hasher, clock.NewMockClock(testNow))
	return f
}

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success: customer created and token issued", func(t *testing.T) {
		f := newAuthFixture(t)
		f.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		f.custs.EXPECT().Create(gomock.Any(), f.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c *customer.Customer) (*customer.Customer, error) {
				assert.Equal(t, "alice", c.Username().Value())
				assert.Equal(t, "Alice", c.FirstName().Value())
				assert.Equal(t, "hashed", c.PasswordHash())
				assert.Equal(t, testNow, c.CreatedAt())
				return c, nil
			})
		f.tokens.EXPECT().GenerateToken(gomock.Any(), "alice").Return("token-value", nil)

		result, err := f.command.Register(ctx, commands.RegisterRequest{
			Username:  " alice ",
			Password:  "password123",
			FirstName: "Alice",
		})
		require.NoError(t, err)
		assert.Equal(t, "token-value", result.Token)
		assert.Equal(t, testNow.Add(time.Hour), result.ExpiresAt)
		assert.Equal(t, "alice", result.Customer.Username)
		assert.NotEqual(t, uuid.Nil, result.Customer.ID)
	})

	t.Run("error: username already taken", func(t *testing.T) {
		f := newAuthFixture(t)
		f.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		f.custs.EXPECT().Create(gomock.Any(), f.db, gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to create customer", &pgconn.PgError{Code: "23505"}))

		_, err := f.command.Register(ctx, commands.RegisterRequest{Username: "alice", Password: "password123", FirstName: "Alice"})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrUsernameTaken))
	})

	testCases := []struct {
		name string
		req  commands.RegisterRequest
	}{
		{"error: username too short", commands.RegisterRequest{Username: "al", Password: "password123", FirstName: "Alice"}},
		{"error: first name empty", commands.RegisterRequest{Username: "alice", Password: "password123", FirstName: " "}},
		{"error: password too short", commands.RegisterRequest{Username: "alice", Password: "short", FirstName: "Alice"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t)
			_, err := f.command.Register(ctx, tc.req)
			require.Error(t, err)
			assert.True(t, errs.Is(err, commands.ErrInvalidInput))
		})
	}
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	cb := builder.NewCustomerBuilder()

	t.Run("success: valid credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reads.EXPECT().CustomerByUsername(gomock.Any(), cb.Username).Return(cb.BuildSnapshot(), nil)
		f.hasher.EXPECT().Compare(cb.PasswordHash, cb.Password).Return(nil)
		f.tokens.EXPECT().GenerateToken(cb.ID, cb.Username).Return("token-value", nil)

		result, err := f.command.Login(ctx, commands.LoginRequest{Username: cb.Username, Password: cb.Password})
		require.NoError(t, err)
		assert.Equal(t, cb.ID, result.Customer.ID)
		assert.Equal(t, cb.FirstName, result.Customer.FirstName)
		assert.Equal(t, "token-value", result.Token)
	})

	t.Run("error: unknown username looks like bad password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reads.EXPECT().CustomerByUsername(gomock.Any(), "ghost").
			Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))

		_, err := f.command.Login(ctx, commands.LoginRequest{Username: "ghost", Password: "password123"})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reads.EXPECT().CustomerByUsername(gomock.Any(), cb.Username).Return(cb.BuildSnapshot(), nil)
		f.hasher.EXPECT().Compare(cb.PasswordHash, "wrong-password").Return(errors.New("mismatch"))

		_, err := f.command.Login(ctx, commands.LoginRequest{Username: cb.Username, Password: "wrong-password"})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: empty credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.command.Login(ctx, commands.LoginRequest{})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: token generation fails", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reads.EXPECT().CustomerByUsername(gomock.Any(), cb.Username).Return(cb.BuildSnapshot(), nil)
		f.hasher.EXPECT().Compare(cb.PasswordHash, cb.Password).Return(nil)
		f.tokens.EXPECT().GenerateToken(cb.ID, cb.Username).Return("", errors.New("signing failed"))

		_, err := f.command.Login(ctx, commands.LoginRequest{Username: cb.Username, Password: cb.Password})
		assert.True(t, errs.Is(err, commands.ErrTokenGeneration))
	})
}
