package database

import (
	"testing"

	"yatube/internal/models"
	"yatube/internal/observability"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "groups", "posts", "comments", "follows"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s to exist", table)
	}

	// migrating twice must be safe
	assert.NoError(t, Migrate(db))
}

func TestMigratedSchemaAcceptsRecords(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	user := models.User{Username: "writer", Email: "writer@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	post := models.Post{Text: "first entry", AuthorID: user.ID}
	require.NoError(t, db.Create(&post).Error)
	assert.False(t, post.PubDate.IsZero())
}

func TestQueriesFeedLatencyHistogram(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: NewGormLogger().LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(
		observability.DatabaseQueryLatency, "yatube_database_query_latency_seconds"), 1)
}

func TestQueryOperation(t *testing.T) {
	assert.Equal(t, "select", queryOperation("SELECT * FROM posts"))
	assert.Equal(t, "insert", queryOperation("INSERT INTO users VALUES (1)"))
	assert.Equal(t, "other", queryOperation("   "))
}
