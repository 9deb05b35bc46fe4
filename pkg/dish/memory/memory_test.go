package memory

import (
	"context"
	"testing"

	"grubdash/pkg/dish"
	"grubdash/pkg/idgen"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New(idgen.NewSequence())
	d, err := repo.Create(ctx, dish.Dish{Name: "Taco", Description: "Spicy", Price: 5, ImageURL: "x.png"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID != "1" {
		t.Fatalf("expected id 1, got %q", d.ID)
	}
	got, err := repo.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != d {
		t.Fatalf("round trip mismatch: %+v != %+v", got, d)
	}
	d.Name = "Burrito"
	if _, err := repo.Update(ctx, d); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].Name != "Burrito" {
		t.Fatalf("expected Burrito, got %s", list[0].Name)
	}
	if _, err := repo.Get(ctx, "99"); err != dish.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Update(ctx, dish.Dish{ID: "99"}); err != dish.ErrNotFound {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}

func TestListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := New(idgen.NewSequence())
	if _, err := repo.Create(ctx, dish.Dish{Name: "Taco"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	list, _ := repo.List(ctx)
	list[0].Name = "mutated"

	got, _ := repo.Get(ctx, "1")
	if got.Name != "Taco" {
		t.Fatalf("list leaked internal state: %s", got.Name)
	}
}

func TestSeedAdvancesSequence(t *testing.T) {
	ctx := context.Background()
	repo := New(idgen.NewSequence())
	if err := repo.Seed(ctx, dish.Dish{ID: "3", Name: "Soup"}, dish.Dish{ID: "8", Name: "Bread"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.Seed(ctx, dish.Dish{ID: "3"}); err == nil {
		t.Fatal("expected duplicate id error")
	}
	d, err := repo.Create(ctx, dish.Dish{Name: "Salad"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID != "9" {
		t.Fatalf("expected id 9 after seed, got %s", d.ID)
	}
}
