package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := []record{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
	before := time.Now().UTC().Add(-time.Second)
	if err := s.Save(ctx, EntityExpenses, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []record
	fetchedAt, err := s.Load(ctx, EntityExpenses, &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].Name != "first" || out[1].ID != 2 {
		t.Errorf("loaded %v, want the saved records", out)
	}
	if fetchedAt.Before(before) {
		t.Errorf("fetchedAt = %v, want a recent timestamp", fetchedAt)
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, EntityLoans, []record{{ID: 1}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.Save(ctx, EntityLoans, []record{{ID: 2}, {ID: 3}}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var out []record
	if _, err := s.Load(ctx, EntityLoans, &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].ID != 2 {
		t.Errorf("loaded %v, want only the latest snapshot", out)
	}
}

func TestStoreEntitiesIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, EntityExpenses, []record{{ID: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []record
	if _, err := s.Load(ctx, EntityInvestments, &out); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("load other entity = %v, want ErrNoSnapshot", err)
	}
}

func TestStoreNoSnapshot(t *testing.T) {
	s := openTestStore(t)

	var out []record
	if _, err := s.Load(context.Background(), EntitySIPs, &out); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("error = %v, want ErrNoSnapshot", err)
	}
}

func TestNilStoreIsNoOp(t *testing.T) {
	var s *Store
	ctx := context.Background()

	if err := s.Save(ctx, EntityExpenses, []record{{ID: 1}}); err != nil {
		t.Errorf("nil save: %v", err)
	}
	var out []record
	if _, err := s.Load(ctx, EntityExpenses, &out); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("nil load = %v, want ErrNoSnapshot", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("nil close: %v", err)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "snapshots.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open with missing directory: %v", err)
	}
	s.Close()
}
