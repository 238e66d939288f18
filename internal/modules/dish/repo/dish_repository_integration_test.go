//go:build integration

package repo

import (
	"context"
	"testing"
	"time"

	"menu-server/internal/db"
	"menu-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgres starts a disposable PostgreSQL container and migrates it.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("menu"),
		postgres.WithUsername("menu"),
		postgres.WithPassword("menu"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gdb, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func TestDishRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	r := NewDishRepository(setupPostgres(t))

	dish := &model.Dish{Name: "Pizza", Price: 9.5, Category: "General"}
	require.NoError(t, r.Create(ctx, dish))
	assert.Equal(t, uint(1), dish.ID)

	got, err := r.FindByID(ctx, dish.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)

	// Re-writing identical values still counts as found.
	updated, err := r.Update(ctx, dish.ID, DishChanges{Name: ptr("Pizza")})
	require.NoError(t, err)
	assert.Equal(t, "Pizza", updated.Name)

	deleted, err := r.Delete(ctx, dish.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	next := &model.Dish{Name: "Sopa", Price: 3}
	require.NoError(t, r.Create(ctx, next))
	assert.Greater(t, next.ID, dish.ID)
}
