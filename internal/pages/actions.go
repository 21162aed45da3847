package pages

import "context"

// RowActions is the row-level mutation helper shared by all entity tables.
// It performs the API call itself and then reports back into the owning
// page's local-state callbacks; the page never refetches after an update or
// delete, it trusts the callback payload.
type RowActions[T any] struct {
	update func(ctx context.Context, id int64, v T) (T, error)
	remove func(ctx context.Context, id int64) error

	OnUpdated func(T)
	OnDeleted func(int64)
}

func NewRowActions[T any](
	update func(ctx context.Context, id int64, v T) (T, error),
	remove func(ctx context.Context, id int64) error,
) *RowActions[T] {
	return &RowActions[T]{update: update, remove: remove}
}

// Update persists the edited entity and hands the server's version to
// OnUpdated. On failure the local state is untouched.
func (a *RowActions[T]) Update(ctx context.Context, id int64, v T) error {
	updated, err := a.update(ctx, id, v)
	if err != nil {
		return err
	}
	if a.OnUpdated != nil {
		a.OnUpdated(updated)
	}
	return nil
}

// Delete removes the entity and hands its id to OnDeleted.
func (a *RowActions[T]) Delete(ctx context.Context, id int64) error {
	if err := a.remove(ctx, id); err != nil {
		return err
	}
	if a.OnDeleted != nil {
		a.OnDeleted(id)
	}
	return nil
}
