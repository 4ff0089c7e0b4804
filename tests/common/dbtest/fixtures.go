//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultPassword = "password123"
	// bcrypt of DefaultPassword
	defaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

var sizeRates = map[string]struct {
	minutes int
	price   int64
}{
	"Small":  {30, 100},
	"Medium": {45, 150},
	"Large":  {60, 200},
}

func CreateTestCustomer(t *testing.T, db DBLike, username, firstName string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO customers (username, password_hash, first_name) VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT customers_username_key DO UPDATE SET first_name = EXCLUDED.first_name
		RETURNING id`,
		username, defaultPasswordHash, firstName).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestAppointment inserts directly, bypassing overlap and pricing rules, so tests can seed past rows.
func CreateTestAppointment(t *testing.T, db DBLike, customerID uuid.UUID, size string, start time.Time) int64 {
	t.Helper()

	rate, ok := sizeRates[size]
	require.True(t, ok, "unknown size %q", size)

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO appointments (customer_id, size_class, starts_at, duration_minutes, base_price, final_price, discount_applied)
		VALUES ($1, $2, $3, $4, $5, $5, false)
		RETURNING id`,
		customerID, size, start, rate.minutes, rate.price).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountAppointments(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM appointments").Scan(&n)
	require.NoError(t, err)
	return n
}

func CountQueuedJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1 AND status = 'queued'", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO customers (username, password_hash, first_name) VALUES
		    ('salon_walkin', $1, 'Walk-in')
		ON CONFLICT ON CONSTRAINT customers_username_key DO NOTHING;
	`, defaultPasswordHash)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
