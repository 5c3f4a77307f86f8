package database

import (
	"context"
	"testing"

	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionSQLiteMemory(t *testing.T) {
	db, err := NewConnectionWithLogger(DriverSQLite3, ":memory:", logging.NewDiscardLogger())
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.Verify(ctx))
	require.NoError(t, db.CreateSchema(ctx))
	require.NoError(t, db.CreateSchema(ctx), "schema creation is idempotent")

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visitor_storage").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestNewConnectionRejectsBadInput(t *testing.T) {
	_, err := NewConnection("postgres", "host=localhost")
	assert.Error(t, err)

	_, err = NewConnection(DriverSQLite3, "  ")
	assert.Error(t, err)
}
