package database_test

import (
	"context"
	stdsql "database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfflow/perfflow/pkg/database"
	testdb "github.com/perfflow/perfflow/test/database"
)

func TestHealth(t *testing.T) {
	client := testdb.NewTestClient(t)

	status, err := database.Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
}

func TestHealth_UnreachableStore(t *testing.T) {
	// Port 1 is never a PostgreSQL listener; the ping must fail fast.
	db, err := stdsql.Open("pgx", "host=127.0.0.1 port=1 user=x password=x dbname=x sslmode=disable connect_timeout=1")
	require.NoError(t, err)
	defer db.Close()

	status, err := database.Health(context.Background(), db)
	assert.Error(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "unhealthy", status.Status)
}
