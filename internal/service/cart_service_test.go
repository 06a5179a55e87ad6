package service

import (
	"context"
	"errors"
	"testing"
)

func TestAddItemValidation(t *testing.T) {
	env := setupServiceTest(t)
	ctx := context.Background()
	product := seedProduct(t, env, "A", "10.00")

	cases := []struct {
		name  string
		input AddCartItemInput
		want  error
	}{
		{name: "zero user", input: AddCartItemInput{UserID: 0, ProductID: product.ID, Quantity: 1}, want: ErrUserIDInvalid},
		{name: "zero quantity", input: AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 0}, want: ErrCartQuantityInvalid},
		{name: "negative quantity", input: AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: -2}, want: ErrCartQuantityInvalid},
		{name: "missing product", input: AddCartItemInput{UserID: 1, ProductID: product.ID + 10, Quantity: 1}, want: ErrCartProductInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.carts.AddItem(ctx, tc.input)
			if !errors.Is(err, tc.want) || !errors.Is(err, ErrValidation) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
		})
	}

	items, err := env.carts.ListItems(ctx, 1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("invalid input must not be persisted, got %+v", items)
	}
}

func TestAddListRemoveItem(t *testing.T) {
	env := setupServiceTest(t)
	ctx := context.Background()
	product := seedProduct(t, env, "A", "10.00")

	first := seedCart(t, env, 1, product.ID, 1)
	second := seedCart(t, env, 1, product.ID, 2)
	if first.ID == second.ID {
		t.Fatalf("each add should create a new row")
	}

	items, err := env.carts.ListItems(ctx, 1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 cart rows got %d", len(items))
	}

	if err := env.carts.RemoveItem(ctx, 2, first.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("removing another user's row want not found, got %v", err)
	}
	if err := env.carts.RemoveItem(ctx, 1, first.ID); err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	if err := env.carts.RemoveItem(ctx, 1, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("removing twice want not found, got %v", err)
	}

	items, err = env.carts.ListItems(ctx, 1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != second.ID {
		t.Fatalf("unexpected remaining rows: %+v", items)
	}
}
