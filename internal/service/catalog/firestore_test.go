package catalog

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/janisto/promarket/internal/testutil"
)

func setupFirestoreTest(t *testing.T) (*FirestoreStore, func()) {
	t.Helper()

	testutil.SkipIfFirestoreUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearFirestore(t)

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, testutil.ProjectID)
	if err != nil {
		t.Fatalf("failed to create Firestore client: %v", err)
	}

	store := NewFirestoreStore(client)
	cleanup := func() {
		testutil.ClearFirestore(t)
		_ = client.Close()
	}

	return store, cleanup
}

func TestFirestoreCreateAssignsSequentialIDs(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()

	first, err := store.Create(ctx, "Plumber")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Create(ctx, "Electrician")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 {
		t.Errorf("expected first ID 1, got %d", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("expected second ID 2, got %d", second.ID)
	}
}

func TestFirestoreCreateDuplicate(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := store.Create(ctx, "Plumber"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := store.Create(ctx, "Plumber")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestFirestoreGetByIDRoundtrip(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()

	created, err := store.Create(ctx, "Painter")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Painter" {
		t.Errorf("expected name Painter, got %s", got.Name)
	}

	if _, err := store.GetByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFirestoreGetByName(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()

	created, err := store.Create(ctx, "Gardener")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.GetByName(ctx, "Gardener")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected ID %d, got %d", created.ID, got.ID)
	}

	if _, err := store.GetByName(ctx, "Welder"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFirestoreListOrderedByID(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()

	names := []string{"Plumber", "Electrician", "Painter"}
	for _, name := range names {
		if _, err := store.Create(ctx, name); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	professions, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(professions) != len(names) {
		t.Fatalf("expected %d professions, got %d", len(names), len(professions))
	}
	for i, name := range names {
		if professions[i].Name != name {
			t.Errorf("expected %s at position %d, got %s", name, i, professions[i].Name)
		}
	}
}
