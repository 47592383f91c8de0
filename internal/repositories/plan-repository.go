package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	apperrors "asset-system/pkg/errors"
)

type PlanRepositoryInterface interface {
	GetPlans(ctx context.Context) ([]entities.Plan, error)
	FindPlan(ctx context.Context, id uint64) (*entities.Plan, error)
	CreatePlan(ctx context.Context, payload dto.CreatePlanDTO) error
	UpdatePlan(ctx context.Context, id uint64, payload dto.UpdatePlanDTO) error
	DeletePlan(ctx context.Context, id uint64) error
}

type PlanRepository struct {
	storage *pgxpool.Pool
}

func NewPlanRepository(storage *pgxpool.Pool) PlanRepositoryInterface {
	return &PlanRepository{storage: storage}
}

func (r *PlanRepository) GetPlans(ctx context.Context) ([]entities.Plan, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name, gb, created_at, updated_at FROM plans ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Plan
	for rows.Next() {
		var p entities.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.GB, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PlanRepository) FindPlan(ctx context.Context, id uint64) (*entities.Plan, error) {
	var p entities.Plan
	err := r.storage.QueryRow(ctx,
		"SELECT id, name, gb, created_at, updated_at FROM plans WHERE id = $1", id,
	).Scan(&p.ID, &p.Name, &p.GB, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlanRepository) CreatePlan(ctx context.Context, payload dto.CreatePlanDTO) error {
	_, err := r.storage.Exec(ctx, "INSERT INTO plans (name, gb) VALUES ($1, $2)", payload.Name, payload.GB)
	return err
}

func (r *PlanRepository) UpdatePlan(ctx context.Context, id uint64, payload dto.UpdatePlanDTO) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE plans SET name = COALESCE($1, name), gb = COALESCE($2, gb), updated_at = CURRENT_TIMESTAMP WHERE id = $3",
		payload.Name, payload.GB, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PlanRepository) DeletePlan(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM plans WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
