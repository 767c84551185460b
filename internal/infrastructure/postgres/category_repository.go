package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, is_active, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría; ErrDuplicate si el nombre ya existe.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, c.Name, c.Description, c.IsActive, c.CreatedAt).Scan(&c.ID); err != nil {
		return writeErr("insert category", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByIDs resuelve varias categorías con ANY($1).
func (r *CategoryRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	list, err := scanAll(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	out := make(map[int64]*entity.Category, len(list))
	for _, c := range list {
		out[c.ID] = c
	}
	return out, nil
}

// List lista por ID ascendente con paginación.
func (r *CategoryRepo) List(ctx context.Context, offset, limit int) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list, err := scanAll(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return list, nil
}

// Update persiste los campos editables.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `UPDATE categories SET name = $2, description = $3, is_active = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description, c.IsActive, c.UpdatedAt)
	if err != nil {
		return writeErr("update category", err)
	}
	return expectOne(tag)
}

// Delete elimina la categoría. Productos y servicios conservan su category_id.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return expectOne(tag)
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
