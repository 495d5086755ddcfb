package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// gormRepository carries the boilerplate shared by every table-backed
// repository: lookup by primary key, filtered listing, counting, saving
// and deleting. Concrete repositories embed it and add their own finders.
type gormRepository[T any] struct {
	db   *Database
	opts queryOptions
}

func newGormRepository[T any](db *Database, opts queryOptions) gormRepository[T] {
	return gormRepository[T]{db: db, opts: opts}
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.Session(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	var entities []T
	var model T
	query := applyFilter(r.db.Session(ctx).Model(&model), filter, r.opts)
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	var model T
	query := applyWhere(r.db.Session(ctx).Model(&model), filter, r.opts)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *gormRepository[T]) Save(ctx context.Context, entity *T) error {
	// Concurrent inserts racing on a generated numero or a composite
	// unique key land here as integrity violations
	if err := r.db.Session(ctx).Save(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *gormRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var model T
	result := r.db.Session(ctx).Delete(&model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// findOneBy fetches a single row by an arbitrary column equality
func findOneBy[T any](r *gormRepository[T], ctx context.Context, column string, value any) (*T, error) {
	var entity T
	if err := r.db.Session(ctx).First(&entity, column+" = ?", value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// existsBy reports whether any row matches an arbitrary column equality
func existsBy[T any](r *gormRepository[T], ctx context.Context, column string, value any) (bool, error) {
	var count int64
	var model T
	if err := r.db.Session(ctx).Model(&model).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// listNumeros returns every numero sharing the prefix, for sequence
// generation inside the inserting transaction
func listNumeros[T any](r *gormRepository[T], ctx context.Context, prefix string) ([]string, error) {
	var numeros []string
	var model T
	if err := r.db.Session(ctx).Model(&model).
		Where("numero LIKE ?", prefix+"%").
		Pluck("numero", &numeros).Error; err != nil {
		return nil, err
	}
	return numeros, nil
}
