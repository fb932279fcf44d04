package events

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/substance/internal/migrations"
	_ "modernc.org/sqlite"
)

// testEvent is a minimal event for bus and log tests.
type testEvent struct {
	BaseEvent
	Message string `json:"message"`
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err)
	return db
}

func TestEventLog_Append(t *testing.T) {
	db := setupTestDB(t)
	log := NewEventLog(db)

	e := &testEvent{
		BaseEvent: NewBaseEvent("test.created", EntityModel, "Chair"),
		Message:   "hello",
	}

	id, err := log.Append(e)
	require.NoError(t, err)
	assert.Positive(t, id)

	events, err := log.ForEntity(EntityModel, "Chair")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Payload, `"message":"hello"`)
	assert.Equal(t, "test.created", events[0].EventType)
	assert.Equal(t, EntityModel, events[0].EntityType)
	assert.Equal(t, "Chair", events[0].EntityKey)
}

func TestEventLog_Recent(t *testing.T) {
	db := setupTestDB(t)
	log := NewEventLog(db)

	for _, key := range []string{"a", "b", "c"} {
		_, err := log.Append(&testEvent{BaseEvent: NewBaseEvent("test.event", EntityModel, key)})
		require.NoError(t, err)
	}

	events, err := log.Recent(2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "b", events[0].EntityKey)
	assert.Equal(t, "c", events[1].EntityKey)
}

func TestEventLog_Prune(t *testing.T) {
	db := setupTestDB(t)
	log := NewEventLog(db)

	old := &testEvent{BaseEvent: NewBaseEvent("test.old", EntityModel, "old")}
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	_, err := log.Append(old)
	require.NoError(t, err)
	_, err = log.Append(&testEvent{BaseEvent: NewBaseEvent("test.new", EntityModel, "new")})
	require.NoError(t, err)

	n, err := log.Prune(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	events, err := log.Recent(10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "new", events[0].EntityKey)
}
