//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/infra"
	"grooming-booking/internal/infra/repository"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/pgconv"
	"grooming-booking/tests/common/builder"
	repositorymock "grooming-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Appointment Tests
// =============================================================================

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAppointmentWriteQueries, *appointment.Appointment, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: appointment created with assigned id",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, a *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAppointmentParams) (sqlc.CreateAppointmentRow, error) {
						assert.Equal(t, a.CustomerID(), arg.CustomerID)
						assert.Equal(t, "Large", arg.SizeClass)
						assert.Equal(t, int32(60), arg.DurationMinutes)
						final, err := pgconv.DecimalFromNumeric(arg.FinalPrice)
						require.NoError(t, err)
						assert.Equal(t, "180.00", final.StringFixed(2))
						return sqlc.CreateAppointmentRow{ID: 21, CreatedAt: pgconv.TimeToPgtype(createdAt)}, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, a *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(sqlc.CreateAppointmentRow{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: customer does not exist",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, a *appointment.Appointment, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(sqlc.CreateAppointmentRow{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, mockDB)

			domainAppt, err := builder.NewAppointmentBuilder().WithID(0).AsLarge().AsDiscounted().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainAppt, mockDB)

			created, actualError := repo.Create(ctx, mockDB, domainAppt)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, created)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, int64(21), created.ID())
				assert.Equal(t, createdAt, created.CreatedAt().UTC())
				assert.Equal(t, domainAppt.Start(), created.Start())
			}
		})
	}
}

// =============================================================================
// Update Appointment Tests
// =============================================================================

func TestAppointmentRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAppointmentWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: appointment updated successfully",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointment(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointment(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: appointment not found",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointment(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, mockDB)

			domainAppt, err := builder.NewAppointmentBuilder().WithID(8).BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Update(ctx, mockDB, domainAppt)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Delete Appointment Tests
// =============================================================================

func TestAppointmentRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAppointmentWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: appointment deleted",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteAppointment(ctx, tx, int64(8)).Return(int64(1), nil)
			},
		},
		{
			name: "error: already deleted",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteAppointment(ctx, tx, int64(8)).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteAppointment(ctx, tx, int64(8)).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Delete(ctx, mockDB, 8)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
