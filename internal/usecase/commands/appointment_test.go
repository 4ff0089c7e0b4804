//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"grooming-booking/internal/domain/appointment"
	"grooming-booking/internal/infra"
	sqlc "grooming-booking/internal/infra/sqlc/generated"
	"grooming-booking/internal/pkg/clock"
	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/shared"
	"grooming-booking/tests/common/builder"
	sharedmock "grooming-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTopic = "grooming.appointments.test"

var (
	testNow   = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	testStart = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
)

type fixture struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	appts   *sharedmock.MockAppointmentRepository
	custs   *sharedmock.MockCustomerRepository
	notify  *sharedmock.MockNotificationRepository
	db      *mockDBTX
	clock   *clock.MockClock
	command commands.AppointmentCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		tx:     sharedmock.NewMockTx(ctrl),
		reads:  sharedmock.NewMockCommandReads(ctrl),
		appts:  sharedmock.NewMockAppointmentRepository(ctrl),
		custs:  sharedmock.NewMockCustomerRepository(ctrl),
		notify: sharedmock.NewMockNotificationRepository(ctrl),
		db:     &mockDBTX{},
		clock:  clock.NewMockClock(testNow),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Appointments().Return(f.appts).AnyTimes()
	f.tx.EXPECT().Customers().Return(f.custs).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notify).AnyTimes()
	f.tx.EXPECT().DB().Return(f.db).AnyTimes()

	runTx := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, f.tx)
	}
	f.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runTx).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runTx).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	services := &appointment.Services{Clock: f.clock, Pricing: appointment.DefaultPricingEngine()}
	f.command = commands.NewAppointmentCommands(f.uow, services, commands.AppointmentSettings{
		Location:   time.UTC,
		EventTopic: testTopic,
	})
	return f
}

func notFoundErr() error {
	return infra.WrapRepoErr("appointment not found", pgx.ErrNoRows)
}

func TestAppointmentCommands_Create(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("success: appointment booked and event queued", func(t *testing.T) {
		f := newFixture(t)
		req := commands.BookAppointmentRequest{Start: testStart, SizeClass: "Medium"}

		f.reads.EXPECT().CountPastAppointments(gomock.Any(), customerID, testNow).Return(0, nil)
		f.reads.EXPECT().OverlapExists(gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, w appointment.OccupancyWindow, _ *int64) (bool, error) {
				assert.Equal(t, testStart, w.Start())
				assert.Equal(t, testStart.Add(45*time.Minute), w.End())
				return false, nil
			})
		f.appts.EXPECT().Create(gomock.Any(), f.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (*appointment.Appointment, error) {
				assert.Equal(t, customerID, a.CustomerID())
				assert.False(t, a.DiscountApplied())
				return appointment.ReconstructAppointment(7, a.CustomerID(), a.SizeClass(), a.Start(), a.Duration(),
					a.BasePrice(), a.FinalPrice(), a.DiscountApplied(), a.CreatedAt())
			})
		f.notify.EXPECT().CreateJob(gomock.Any(), f.db, commands.EventAppointmentBooked, testTopic, gomock.Any(), testNow).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ string, payload []byte, _ time.Time) error {
				var ev map[string]any
				require.NoError(t, json.Unmarshal(payload, &ev))
				assert.EqualValues(t, 7, ev["appointmentId"])
				assert.Equal(t, "Medium", ev["dogSize"])
				assert.Equal(t, "150.00", ev["finalPrice"])
				return nil
			})

		result, err := f.command.Create(ctx, req, customerID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), result.AppointmentID)
	})

	t.Run("success: loyalty discount applied above threshold", func(t *testing.T) {
		f := newFixture(t)
		req := commands.BookAppointmentRequest{Start: testStart, SizeClass: "Large"}

		f.reads.EXPECT().CountPastAppointments(gomock.Any(), customerID, testNow).Return(4, nil)
		f.reads.EXPECT().OverlapExists(gomock.Any(), gomock.Any(), nil).Return(false, nil)
		f.appts.EXPECT().Create(gomock.Any(), f.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (*appointment.Appointment, error) {
				assert.True(t, a.DiscountApplied())
				assert.Equal(t, "180.00", a.FinalPrice().String())
				return a, nil
			})
		f.notify.EXPECT().CreateJob(gomock.Any(), f.db, commands.EventAppointmentBooked, testTopic, gomock.Any(), testNow).Return(nil)

		_, err := f.command.Create(ctx, req, customerID)
		require.NoError(t, err)
	})

	t.Run("error: slot overlaps existing appointment", func(t *testing.T) {
		f := newFixture(t)
		req := commands.BookAppointmentRequest{Start: testStart, SizeClass: "Small"}

		f.reads.EXPECT().CountPastAppointments(gomock.Any(), customerID, testNow).Return(0, nil)
		f.reads.EXPECT().OverlapExists(gomock.Any(), gomock.Any(), nil).Return(true, nil)

		result, err := f.command.Create(ctx, req, customerID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrSlotConflict))
		assert.Nil(t, result)
	})

	t.Run("error: invalid size class rejected before transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		services := &appointment.Services{Clock: clock.NewMockClock(testNow), Pricing: appointment.DefaultPricingEngine()}
		cmd := commands.NewAppointmentCommands(uow, services, commands.AppointmentSettings{})

		_, err := cmd.Create(ctx, commands.BookAppointmentRequest{Start: testStart, SizeClass: "Huge"}, customerID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidInput))
	})

	t.Run("error: missing start rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.command.Create(ctx, commands.BookAppointmentRequest{SizeClass: "Small"}, customerID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInvalidInput))
	})

	t.Run("error: retries exhausted maps to transient failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errs.New("serialization failure"), shared.ErrMaxRetriesExceeded))
		services := &appointment.Services{Clock: clock.NewMockClock(testNow), Pricing: appointment.DefaultPricingEngine()}
		cmd := commands.NewAppointmentCommands(uow, services, commands.AppointmentSettings{})

		_, err := cmd.Create(ctx, commands.BookAppointmentRequest{Start: testStart, SizeClass: "Small"}, customerID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrTransientFailure))
	})
}

func TestAppointmentCommands_Update(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	newStart := testStart.Add(2 * time.Hour)

	snapshot := func() *shared.AppointmentSnapshot {
		return builder.NewAppointmentBuilder().WithID(11).WithCustomerID(owner).WithStart(testStart).BuildSnapshot()
	}

	t.Run("success: rescheduled excluding itself from overlap", func(t *testing.T) {
		f := newFixture(t)
		req := commands.BookAppointmentRequest{Start: newStart, SizeClass: "Large"}

		f.reads.EXPECT().AppointmentByID(gomock.Any(), int64(11)).Return(snapshot(), nil)
		f.reads.EXPECT().CountPastAppointments(gomock.Any(), owner, testNow).Return(1, nil)
		f.reads.EXPECT().OverlapExists(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w appointment.OccupancyWindow, excludeID *int64) (bool, error) {
				require.NotNil(t, excludeID)
				assert.Equal(t, int64(11), *excludeID)
				assert.Equal(t, newStart.Add(time.Hour), w.End())
				return false, nil
			})
		f.appts.EXPECT().Update(gomock.Any(), f.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) error {
				assert.Equal(t, int64(11), a.ID())
				assert.Equal(t, owner, a.CustomerID())
				assert.Equal(t, appointment.SizeLarge, a.SizeClass())
				assert.Equal(t, "200.00", a.FinalPrice().String())
				return nil
			})
		f.notify.EXPECT().CreateJob(gomock.Any(), f.db, commands.EventAppointmentRescheduled, testTopic, gomock.Any(), testNow).Return(nil)

		require.NoError(t, f.command.Update(ctx, 11, req, owner))
	})

	t.Run("error: appointment owned by another customer", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().AppointmentByID(gomock.Any(), int64(11)).Return(snapshot(), nil)

		err := f.command.Update(ctx, 11, commands.BookAppointmentRequest{Start: newStart, SizeClass: "Small"}, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrAppointmentForbidden))
	})

	t.Run("error: appointment does not exist", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().AppointmentByID(gomock.Any(), int64(99)).Return(nil, notFoundErr())

		err := f.command.Update(ctx, 99, commands.BookAppointmentRequest{Start: newStart, SizeClass: "Small"}, owner)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrAppointmentNotFound))
	})

	t.Run("error: new slot overlaps another appointment", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().AppointmentByID(gomock.Any(), int64(11)).Return(snapshot(), nil)
		f.reads.EXPECT().CountPastAppointments(gomock.Any(), owner, testNow).Return(0, nil)
		f.reads.EXPECT().OverlapExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.command.Update(ctx, 11, commands.BookAppointmentRequest{Start: newStart, SizeClass: "Small"}, owner)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrSlotConflict))
	})
}

func TestAppointmentCommands_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	snapshot := func() *shared.AppointmentSnapshot {
		return builder.NewAppointmentBuilder().WithID(5).WithCustomerID(owner).WithStart(testStart).BuildSnapshot()
	}

	t.Run("success: cancelled before its date", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().AppointmentByIDForUpdate(gomock.Any(), int64(5)).Return(snapshot(), nil)
		f.appts.EXPECT().Delete(gomock.Any(), f.db, int64(5)).Return(nil)
		f.notify.EXPECT().CreateJob(gomock.Any(), f.db, commands.EventAppointmentCancelled, testTopic, gomock.Any(), testNow).Return(nil)

		require.NoError(t, f.command.Delete(ctx, 5, owner))
	})

	t.Run("error: cancelling on the appointment's own date", func(t *testing.T) {
		f := newFixture(t)
		f.clock.Set(time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC))
		f.reads.EXPECT().AppointmentByIDForUpdate(gomock.Any(), int64(5)).Return(snapshot(), nil)

		err := f.command.Delete(ctx, 5, owner)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrSameDayLock))
	})

	t.Run("error: appointment owned by another customer", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().AppointmentByIDForUpdate(gomock.Any(), int64(5)).Return(snapshot(), nil)

		err := f.command.Delete(ctx, 5, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrAppointmentForbidden))
	})

	t.Run("error: appointment removed concurrently", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().AppointmentByIDForUpdate(gomock.Any(), int64(5)).Return(snapshot(), nil)
		f.appts.EXPECT().Delete(gomock.Any(), f.db, int64(5)).
			Return(infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		err := f.command.Delete(ctx, 5, owner)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrAppointmentNotFound))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use repository mocks instead.")
}
