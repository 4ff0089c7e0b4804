//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grooming-booking/internal/infra"
	"grooming-booking/internal/pkg/errs"
	"grooming-booking/internal/usecase/queries"
	"grooming-booking/tests/common/builder"
	queriesmock "grooming-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestAppointmentQueries_List(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	testCases := []struct {
		name      string
		filter    queries.AppointmentFilter
		setupMock func(*queriesmock.MockAppointmentReadStore)
		expectLen int
		expectErr bool
		errIs     error
	}{
		{
			name:   "success: passes filter through",
			filter: queries.AppointmentFilter{StartFrom: &from, StartTo: &to, CustomerName: ptr("Ali")},
			setupMock: func(m *queriesmock.MockAppointmentReadStore) {
				m.EXPECT().List(ctx, queries.AppointmentFilter{StartFrom: &from, StartTo: &to, CustomerName: ptr("Ali")}).
					Return([]*queries.AppointmentView{builder.NewAppointmentBuilder().BuildView()}, nil)
			},
			expectLen: 1,
		},
		{
			name:   "success: blank name filter is dropped",
			filter: queries.AppointmentFilter{CustomerName: ptr("   ")},
			setupMock: func(m *queriesmock.MockAppointmentReadStore) {
				m.EXPECT().List(ctx, queries.AppointmentFilter{}).Return(nil, nil)
			},
			expectLen: 0,
		},
		{
			name:      "error: start after end",
			filter:    queries.AppointmentFilter{StartFrom: &to, StartTo: &from},
			setupMock: func(m *queriesmock.MockAppointmentReadStore) {},
			expectErr: true,
			errIs:     queries.ErrInvalidDateRange,
		},
		{
			name:   "error: read store failure",
			filter: queries.AppointmentFilter{},
			setupMock: func(m *queriesmock.MockAppointmentReadStore) {
				m.EXPECT().List(ctx, queries.AppointmentFilter{}).Return(nil, errors.New("database connection error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockAppointmentReadStore(ctrl)
			tc.setupMock(store)

			views, err := queries.NewAppointmentQueries(store).List(ctx, tc.filter)
			if tc.expectErr {
				require.Error(t, err)
				if tc.errIs != nil {
					assert.True(t, errs.Is(err, tc.errIs))
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, views)
			assert.Len(t, views, tc.expectLen)
		})
	}
}

func TestAppointmentQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: view returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		expected := builder.NewAppointmentBuilder().WithID(3).BuildView()
		store.EXPECT().FindByID(ctx, int64(3)).Return(expected, nil)

		actual, err := queries.NewAppointmentQueries(store).GetByID(ctx, 3)
		require.NoError(t, err)
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: not found is translated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		store.EXPECT().FindByID(ctx, int64(3)).Return(nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		_, err := queries.NewAppointmentQueries(store).GetByID(ctx, 3)
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrAppointmentNotFound))
	})
}
