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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference catalog loaded after every reset. IDs are stable because ResetDB restarts identities.
const (
	VoucherCoffeeID  int64 = 1 // 10 points
	VoucherLunchID   int64 = 2 // 15 points
	VoucherMovieID   int64 = 3 // 40 points
	VoucherFreebieID int64 = 4 // 0 points

	TaskIntroID    int64 = 1 // 5 points
	TaskSafetyID   int64 = 2 // 10 points
	TaskCultureID  int64 = 3 // 15 points
	TaskNoRewardID int64 = 4 // 0 points
)

func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO vouchers (title, description, cost_points) VALUES
		    ('Coffee', 'One regular coffee', 10),
		    ('Lunch', 'Canteen lunch set', 15),
		    ('Movie', 'Cinema ticket', 40),
		    ('Sticker', 'Lion sticker', 0);
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO video_tasks (title, youtube_id, point_value) VALUES
		    ('Welcome to the pride', 'dQw4w9WgXcQ', 5),
		    ('Safety basics', 'oHg5SJYRHA0', 10),
		    ('Our culture', 'y6120QOlsfU', 15),
		    ('Bonus reel', 'aqz-KE-bpKQ', 0);
	`)
	return err
}

func SetBalance(t *testing.T, db DBLike, userID, balance int64) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
		INSERT INTO points (user_id, balance) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = EXCLUDED.balance`, userID, balance)
	require.NoError(t, err)
}

// Balance returns 0 for users without a ledger row.
func Balance(t *testing.T, db DBLike, userID int64) int64 {
	t.Helper()
	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT balance FROM points WHERE user_id = $1), 0)", userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func AddCartItem(t *testing.T, db DBLike, userID, voucherID int64, quantity int) int64 {
	t.Helper()
	var cartID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO cart (user_id, voucher_id, quantity) VALUES ($1, $2, $3) RETURNING cart_id",
		userID, voucherID, quantity).Scan(&cartID)
	require.NoError(t, err)
	return cartID
}

func CountRows(t *testing.T, db DBLike, table string, userID int64) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM "+table+" WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
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
