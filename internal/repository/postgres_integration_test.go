//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/minishop/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.Order{},
		&models.CartItem{},
		&models.Product{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresUniqueViolationMapsToDuplicate(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.User{Username: "pg-alice", PasswordHash: "x"}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	err := repo.Create(ctx, &models.User{Username: "pg-alice", PasswordHash: "y"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("postgres duplicate username want ErrDuplicate, got %v", err)
	}
}

func TestPostgresCartLockAndDeleteInTransaction(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	if !supportsRowLock(dbDialectName(db)) {
		t.Fatalf("postgres dialect should support row locks, got %s", dbDialectName(db))
	}
	repo := NewCartRepository(db)
	ctx := context.Background()

	for _, productID := range []uint{1, 2} {
		if err := repo.Create(ctx, &models.CartItem{UserID: 42, ProductID: productID, Quantity: 1}); err != nil {
			t.Fatalf("create cart item failed: %v", err)
		}
	}

	err := NewTransactor(db).Transaction(ctx, func(tx *gorm.DB) error {
		txRepo := repo.WithTx(tx)
		items, err := txRepo.ListByUserForUpdate(ctx, 42)
		if err != nil {
			return err
		}
		if len(items) != 2 {
			t.Fatalf("locked snapshot want 2 rows got %d", len(items))
		}
		ids := []uint{items[0].ID, items[1].ID}
		affected, err := txRepo.DeleteByIDs(ctx, 42, ids)
		if err != nil {
			return err
		}
		if affected != 2 {
			t.Fatalf("delete affected want 2 got %d", affected)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	rest, err := repo.ListByUser(ctx, 42)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("cart should be empty after commit, got %+v", rest)
	}
}
