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

// rooms inserted by SeedReferenceData
var (
	SeedRoomDeluxe = uuid.MustParse("00000000-0000-0000-0000-00000000a101")
	SeedRoomSuite  = uuid.MustParse("00000000-0000-0000-0000-00000000a102")
)

func CreateTestRoom(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, price_cents) VALUES ($1, $2, $3)", roomID, name, priceCents)
	require.NoError(t, err)

	return roomID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func BookingStatus(t *testing.T, db DBLike, transactionID string) (bookingStatus, paymentStatus string) {
	t.Helper()

	err := db.QueryRow(context.Background(), `
		SELECT b.status, p.status
		FROM bookings b JOIN payments p ON p.booking_id = b.id
		WHERE b.transaction_id = $1`, transactionID).Scan(&bookingStatus, &paymentStatus)
	require.NoError(t, err)
	return bookingStatus, paymentStatus
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (id, name, price_cents) VALUES
		    ('00000000-0000-0000-0000-00000000a101', 'Deluxe 101', 10000),
		    ('00000000-0000-0000-0000-00000000a102', 'Suite 102', 5000)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
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
