package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/minishop/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repository_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustMoney(t *testing.T, value string) models.Money {
	t.Helper()
	amount, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse money %s failed: %v", value, err)
	}
	return models.NewMoneyFromDecimal(amount)
}
