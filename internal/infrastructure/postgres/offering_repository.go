package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

var (
	_ repository.ServiceRepository  = (*ServiceRepo)(nil)
	_ repository.SolutionRepository = (*SolutionRepo)(nil)
)

const (
	serviceColumns  = `id, name, description, category_id, features, is_active, created_at, updated_at`
	solutionColumns = `id, name, description, features, is_active, created_at, updated_at`
)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (name, description, category_id, features, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, s.Name, s.Description, s.CategoryID, s.Features, s.IsActive, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		return writeErr("insert service", err)
	}
	return nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id int64) (*entity.Service, error) {
	s, err := scanService(r.q.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

func (r *ServiceRepo) List(ctx context.Context, offset, limit int) ([]*entity.Service, error) {
	rows, err := r.q.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	list, err := scanAll(rows, scanService)
	if err != nil {
		return nil, fmt.Errorf("scan services: %w", err)
	}
	return list, nil
}

func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services SET name = $2, description = $3, category_id = $4, features = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Description, s.CategoryID, s.Features, s.IsActive, s.UpdatedAt)
	if err != nil {
		return writeErr("update service", err)
	}
	return expectOne(tag)
}

func (r *ServiceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return expectOne(tag)
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.Features, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// SolutionRepo implementación del puerto SolutionRepository sobre PostgreSQL.
type SolutionRepo struct {
	q Querier
}

// NewSolutionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSolutionRepository(q Querier) *SolutionRepo {
	return &SolutionRepo{q: q}
}

func (r *SolutionRepo) Create(ctx context.Context, s *entity.Solution) error {
	query := `
		INSERT INTO solutions (name, description, features, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.Name, s.Description, s.Features, s.IsActive, s.CreatedAt).Scan(&s.ID); err != nil {
		return writeErr("insert solution", err)
	}
	return nil
}

func (r *SolutionRepo) GetByID(ctx context.Context, id int64) (*entity.Solution, error) {
	s, err := scanSolution(r.q.QueryRow(ctx, `SELECT `+solutionColumns+` FROM solutions WHERE id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solution: %w", err)
	}
	return s, nil
}

func (r *SolutionRepo) List(ctx context.Context, offset, limit int) ([]*entity.Solution, error) {
	rows, err := r.q.Query(ctx, `SELECT `+solutionColumns+` FROM solutions ORDER BY id OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	list, err := scanAll(rows, scanSolution)
	if err != nil {
		return nil, fmt.Errorf("scan solutions: %w", err)
	}
	return list, nil
}

func (r *SolutionRepo) Update(ctx context.Context, s *entity.Solution) error {
	query := `UPDATE solutions SET name = $2, description = $3, features = $4, is_active = $5, updated_at = $6 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Description, s.Features, s.IsActive, s.UpdatedAt)
	if err != nil {
		return writeErr("update solution", err)
	}
	return expectOne(tag)
}

func (r *SolutionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM solutions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete solution: %w", err)
	}
	return expectOne(tag)
}

func scanSolution(row pgx.Row) (*entity.Solution, error) {
	var s entity.Solution
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Features, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
