package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestMockCreateAssignsSequentialIDs(t *testing.T) {
	svc := NewMockCatalogService()
	ctx := context.Background()

	first, err := svc.Create(ctx, "Plumber")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Create(ctx, "Electrician")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 {
		t.Errorf("expected first ID 1, got %d", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("expected second ID 2, got %d", second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestMockCreateDuplicateName(t *testing.T) {
	svc := NewMockCatalogService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Plumber"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(ctx, "Plumber")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestMockCreateIsCaseSensitive(t *testing.T) {
	svc := NewMockCatalogService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Plumber"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(ctx, "plumber"); err != nil {
		t.Fatalf("expected differently-cased name to be accepted, got %v", err)
	}
}

func TestMockCreateTrimsWhitespace(t *testing.T) {
	svc := NewMockCatalogService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "  Carpenter  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Carpenter" {
		t.Errorf("expected trimmed name Carpenter, got %q", p.Name)
	}

	_, err = svc.Create(ctx, "Carpenter")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName after trim, got %v", err)
	}
}

func TestMockGetByIDRoundtrip(t *testing.T) {
	svc := NewMockCatalogService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, "Painter")

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Painter" {
		t.Errorf("expected name Painter, got %s", got.Name)
	}
}

func TestMockGetByIDNotFound(t *testing.T) {
	svc := NewMockCatalogService()

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockGetByName(t *testing.T) {
	svc := NewMockCatalogService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, "Gardener")

	got, err := svc.GetByName(ctx, "Gardener")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected ID %d, got %d", created.ID, got.ID)
	}

	if _, err := svc.GetByName(ctx, "Welder"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockListStableOrder(t *testing.T) {
	svc := NewMockCatalogService()
	ctx := context.Background()

	names := []string{"Plumber", "Electrician", "Painter"}
	for _, name := range names {
		if _, err := svc.Create(ctx, name); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(names) || len(second) != len(names) {
		t.Fatalf("expected %d professions, got %d and %d", len(names), len(first), len(second))
	}
	for i, name := range names {
		if first[i].Name != name {
			t.Errorf("expected %s at position %d, got %s", name, i, first[i].Name)
		}
		if second[i] != first[i] {
			t.Errorf("expected identical output across calls at position %d", i)
		}
	}
}

func TestMockListEmpty(t *testing.T) {
	svc := NewMockCatalogService()

	professions, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(professions) != 0 {
		t.Fatalf("expected empty list, got %d", len(professions))
	}
}

func TestMockClear(t *testing.T) {
	svc := NewMockCatalogService()
	ctx := context.Background()

	_, _ = svc.Create(ctx, "Plumber")
	svc.Clear()

	professions, _ := svc.List(ctx)
	if len(professions) != 0 {
		t.Fatalf("expected empty list after Clear, got %d", len(professions))
	}

	p, err := svc.Create(ctx, "Electrician")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected IDs to restart at 1 after Clear, got %d", p.ID)
	}
}
