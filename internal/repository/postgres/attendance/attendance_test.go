package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workforce/backend/internal/pkg/day"
	"workforce/backend/internal/pkg/repository/postgresql"
)

func testRepository() *Repository {
	return NewRepository(postgresql.NewDB(postgresql.Config{
		Username:   "test",
		Password:   "test",
		Host:       "localhost",
		Port:       "5432",
		Name:       "test",
		DisableTLS: true,
	}))
}

// A repeat check-in must leave the stored row alone: the insert resolves the
// (user_id, work_day) conflict by writing nothing, never by updating.
func TestCheckInInsertKeepsExistingRow(t *testing.T) {
	r := testRepository()

	workDay, err := day.Parse("2026-03-05")
	require.NoError(t, err)

	now := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	row := CheckInResponse{
		UserID:    1,
		WorkDay:   workDay,
		CheckInAt: now,
		CreatedAt: now,
		CreatedBy: 1,
	}

	query, err := r.checkInInsert(&row).AppendQuery(r.Formatter(), nil)
	require.NoError(t, err)

	text := string(query)
	assert.Contains(t, text, `ON CONFLICT (user_id, work_day) DO NOTHING`)
	assert.NotContains(t, text, "DO UPDATE")
	assert.Contains(t, text, `"attendance"`)
	assert.Contains(t, text, "check_in_at")
}
