package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

const upsertPattern = `INSERT INTO "attendances" .* ON CONFLICT \("courier_id","date"\) DO UPDATE SET "entry_time"="excluded"\."entry_time","exit_time"="excluded"\."exit_time","status"="excluded"\."status","observation"="excluded"\."observation","updated_at"="excluded"\."updated_at" RETURNING`

func TestRepository_Upsert_OverwritesExistingDayRow(t *testing.T) {
	gdb, mock := newMockGorm(t)
	repo := NewRepository(gdb)

	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	entry := "08:15:00"
	row := &Attendance{
		ID:          uuid.New(),
		CourierID:   uuid.New(),
		Date:        day,
		EntryTime:   &entry,
		Status:      StatusPresent,
		Observation: "first punch",
	}

	mock.ExpectQuery(upsertPattern).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(row.ID.String()))
	require.NoError(t, repo.Upsert(context.Background(), row))

	// re-sending the same (courier, day) with corrected punches goes
	// through the same conflict clause instead of inserting a second row
	corrected := "08:27:00"
	row.EntryTime = &corrected
	row.Status = StatusLate
	row.Observation = "corrected punch"

	mock.ExpectQuery(upsertPattern).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(row.ID.String()))
	require.NoError(t, repo.Upsert(context.Background(), row))

	assert.NoError(t, mock.ExpectationsWereMet())
}
