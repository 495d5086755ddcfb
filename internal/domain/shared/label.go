package shared

import (
	"context"

	"github.com/google/uuid"
)

// LabelIndex loads a whole referenced collection and indexes a display
// label by id. Export views resolve foreign keys to human-readable names
// through it, so a spreadsheet shows "MAGASIN CENTRAL" instead of a uuid.
func LabelIndex[T any](ctx context.Context, list func(context.Context, Filter) ([]T, error), label func(*T) (uuid.UUID, string)) (map[uuid.UUID]string, error) {
	items, err := list(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	index := make(map[uuid.UUID]string, len(items))
	for i := range items {
		id, nom := label(&items[i])
		index[id] = nom
	}
	return index, nil
}
