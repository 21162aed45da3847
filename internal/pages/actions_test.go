package pages

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/core"
)

func TestRowActionsUpdate(t *testing.T) {
	var gotID int64
	var applied *core.Expense
	actions := NewRowActions(
		func(ctx context.Context, id int64, e core.Expense) (core.Expense, error) {
			gotID = id
			e.ID = id
			e.Amount = 99 // server recomputed
			return e, nil
		},
		func(ctx context.Context, id int64) error { return nil },
	)
	actions.OnUpdated = func(e core.Expense) { applied = &e }

	if err := actions.Update(context.Background(), 5, core.Expense{Amount: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 5 {
		t.Errorf("update called with id %d, want 5", gotID)
	}
	if applied == nil || applied.Amount != 99 {
		t.Errorf("OnUpdated got %+v, want the server version", applied)
	}
}

func TestRowActionsUpdateFailure(t *testing.T) {
	called := false
	actions := NewRowActions(
		func(ctx context.Context, id int64, e core.Expense) (core.Expense, error) {
			return core.Expense{}, errors.New("rejected")
		},
		func(ctx context.Context, id int64) error { return nil },
	)
	actions.OnUpdated = func(core.Expense) { called = true }

	if err := actions.Update(context.Background(), 5, core.Expense{}); err == nil {
		t.Fatal("expected error")
	}
	if called {
		t.Error("OnUpdated must not fire when the API call fails")
	}
}

func TestRowActionsDelete(t *testing.T) {
	var deleted int64
	actions := NewRowActions(
		func(ctx context.Context, id int64, e core.Expense) (core.Expense, error) {
			return e, nil
		},
		func(ctx context.Context, id int64) error { return nil },
	)
	actions.OnDeleted = func(id int64) { deleted = id }

	if err := actions.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 7 {
		t.Errorf("OnDeleted got %d, want 7", deleted)
	}
}

func TestRowActionsDeleteFailure(t *testing.T) {
	called := false
	actions := NewRowActions(
		func(ctx context.Context, id int64, e core.Expense) (core.Expense, error) {
			return e, nil
		},
		func(ctx context.Context, id int64) error { return errors.New("rejected") },
	)
	actions.OnDeleted = func(int64) { called = true }

	if err := actions.Delete(context.Background(), 7); err == nil {
		t.Fatal("expected error")
	}
	if called {
		t.Error("OnDeleted must not fire when the API call fails")
	}
}

func TestRowActionsNilCallbacks(t *testing.T) {
	actions := NewRowActions(
		func(ctx context.Context, id int64, e core.Expense) (core.Expense, error) {
			return e, nil
		},
		func(ctx context.Context, id int64) error { return nil },
	)

	if err := actions.Update(context.Background(), 1, core.Expense{}); err != nil {
		t.Errorf("update with nil callback: %v", err)
	}
	if err := actions.Delete(context.Background(), 1); err != nil {
		t.Errorf("delete with nil callback: %v", err)
	}
}
