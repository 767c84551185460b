package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, logo_url, description, is_active, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, logo_url, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, c.Name, c.LogoURL, c.Description, c.IsActive, c.CreatedAt).Scan(&c.ID); err != nil {
		return writeErr("insert customer", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista clientes por ID ascendente.
func (r *CustomerRepo) List(ctx context.Context, offset, limit int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	list, err := scanAll(rows, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("scan customers: %w", err)
	}
	return list, nil
}

// Update actualiza los datos del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `UPDATE customers SET name = $2, logo_url = $3, description = $4, is_active = $5, updated_at = $6 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Name, c.LogoURL, c.Description, c.IsActive, c.UpdatedAt)
	if err != nil {
		return writeErr("update customer", err)
	}
	return expectOne(tag)
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return expectOne(tag)
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.LogoURL, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
