package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "mubadara.db")), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Name: "مستخدم", PasswordHash: "x"}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedInitiative(t *testing.T, db *gorm.DB, owner uuid.UUID, max *int) *model.Initiative {
	t.Helper()
	i := &model.Initiative{Title: "تنظيف الشاطئ", City: "Jeddah", Category: "environment", OwnerID: owner, MaxParticipants: max}
	require.NoError(t, repository.NewInitiativeRepository(db).Create(context.Background(), i))
	return i
}

func setCounters(t *testing.T, db *gorm.DB, id uuid.UUID, current int) {
	t.Helper()
	require.NoError(t, db.Table("initiatives").Where("id = ?", id).Update("current_participants", current).Error)
}

func setStatus(t *testing.T, db *gorm.DB, id uuid.UUID, status workflow.Status) {
	t.Helper()
	require.NoError(t, db.Table("initiatives").Where("id = ?", id).Update("status", status).Error)
}

func intPtr(n int) *int { return &n }

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
