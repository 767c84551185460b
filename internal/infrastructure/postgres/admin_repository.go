package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

const adminColumns = `id, username, email, hashed_password, is_active, created_at, updated_at`

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create inserta el admin y asigna el ID generado.
func (r *AdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	query := `
		INSERT INTO admins (username, email, hashed_password, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, a.Username, a.Email, a.HashedPassword, a.IsActive, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return writeErr("insert admin", err)
	}
	return nil
}

// GetByID obtiene un admin por ID.
func (r *AdminRepo) GetByID(ctx context.Context, id int64) (*entity.Admin, error) {
	a, err := scanAdmin(r.q.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return a, nil
}

// GetByUsername obtiene un admin por username.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	a, err := scanAdmin(r.q.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE username = $1`, username))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by username: %w", err)
	}
	return a, nil
}

// Update persiste todos los campos editables.
func (r *AdminRepo) Update(ctx context.Context, a *entity.Admin) error {
	query := `
		UPDATE admins SET username = $2, email = $3, hashed_password = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, a.ID, a.Username, a.Email, a.HashedPassword, a.IsActive, a.UpdatedAt)
	if err != nil {
		return writeErr("update admin", err)
	}
	return expectOne(tag)
}

// Delete elimina un admin por ID.
func (r *AdminRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return expectOne(tag)
}

func scanAdmin(row pgx.Row) (*entity.Admin, error) {
	var a entity.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.HashedPassword, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
