package repository

import (
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navalhaapps/barbershop-api/internal/models"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}
	return db
}

// Postgres refuses a locking clause on an aggregate ("FOR UPDATE is not
// allowed with aggregate functions"), so the conflict check must select
// rows, never count them.
func TestSlotConflictQueryShape(t *testing.T) {
	db := newDryRunDB(t)

	date := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var conflicts []models.Booking
		return slotConflictQuery(tx, &conflicts, "barber-1", date)
	})

	lower := strings.ToLower(sql)

	if strings.Contains(lower, "count(") {
		t.Fatalf("conflict check aggregates instead of selecting rows: %s", sql)
	}
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("conflict check does not lock the slot row: %s", sql)
	}
	if !strings.Contains(lower, "limit") {
		t.Fatalf("conflict check should fetch at most one row: %s", sql)
	}

	for _, col := range []string{"barber_id", "date", "status"} {
		if !strings.Contains(lower, col) {
			t.Fatalf("conflict check misses the %s predicate: %s", col, sql)
		}
	}
}
