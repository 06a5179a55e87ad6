package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/minishop/internal/models"

	"gorm.io/gorm"
)

func TestCartRepositoryListByUserScopesRows(t *testing.T) {
	repo := NewCartRepository(openTestDB(t))
	ctx := context.Background()

	rows := []*models.CartItem{
		{UserID: 1, ProductID: 10, Quantity: 2},
		{UserID: 2, ProductID: 10, Quantity: 1},
		{UserID: 1, ProductID: 11, Quantity: 3},
	}
	for _, row := range rows {
		if err := repo.Create(ctx, row); err != nil {
			t.Fatalf("create cart item failed: %v", err)
		}
	}

	items, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 2 || items[0].ProductID != 10 || items[1].ProductID != 11 {
		t.Fatalf("unexpected cart rows: %+v", items)
	}

	locked, err := repo.ListByUserForUpdate(ctx, 2)
	if err != nil {
		t.Fatalf("list cart for update failed: %v", err)
	}
	if len(locked) != 1 || locked[0].UserID != 2 {
		t.Fatalf("unexpected locked rows: %+v", locked)
	}
}

func TestCartRepositoryDeleteByIDsReportsAffectedRows(t *testing.T) {
	repo := NewCartRepository(openTestDB(t))
	ctx := context.Background()

	first := &models.CartItem{UserID: 1, ProductID: 10, Quantity: 1}
	second := &models.CartItem{UserID: 1, ProductID: 11, Quantity: 1}
	foreign := &models.CartItem{UserID: 2, ProductID: 10, Quantity: 1}
	for _, row := range []*models.CartItem{first, second, foreign} {
		if err := repo.Create(ctx, row); err != nil {
			t.Fatalf("create cart item failed: %v", err)
		}
	}

	affected, err := repo.DeleteByIDs(ctx, 1, []uint{first.ID, foreign.ID})
	if err != nil {
		t.Fatalf("delete cart items failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("only rows owned by the user should be deleted, affected=%d", affected)
	}

	again, err := repo.DeleteByIDs(ctx, 1, []uint{first.ID})
	if err != nil {
		t.Fatalf("delete again failed: %v", err)
	}
	if again != 0 {
		t.Fatalf("deleting consumed rows should affect nothing, affected=%d", again)
	}

	foreignRows, err := repo.ListByUser(ctx, 2)
	if err != nil || len(foreignRows) != 1 || foreignRows[0].ID != foreign.ID {
		t.Fatalf("foreign row should survive, rows=%+v err=%v", foreignRows, err)
	}
	ownRows, err := repo.ListByUser(ctx, 1)
	if err != nil || len(ownRows) != 1 || ownRows[0].ID != second.ID {
		t.Fatalf("only the untouched row should remain, rows=%+v err=%v", ownRows, err)
	}
}

func TestCartRepositoryWithTxRollsBack(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	err := NewTransactor(db).Transaction(ctx, func(tx *gorm.DB) error {
		if err := repo.WithTx(tx).Create(ctx, &models.CartItem{UserID: 7, ProductID: 1, Quantity: 1}); err != nil {
			return err
		}
		return errRollback
	})
	if err != errRollback {
		t.Fatalf("transaction should return callback error, got %v", err)
	}

	items, err := repo.ListByUser(ctx, 7)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("rolled back insert should not be visible, got %+v", items)
	}
}

var errRollback = errors.New("rollback")
