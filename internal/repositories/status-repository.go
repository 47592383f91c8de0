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

type StatusRepositoryInterface interface {
	GetStatuses(ctx context.Context) ([]entities.Status, error)
	FindStatus(ctx context.Context, id uint64) (*entities.Status, error)
	CreateStatus(ctx context.Context, payload dto.CreateStatusDTO) error
	UpdateStatus(ctx context.Context, id uint64, payload dto.UpdateStatusDTO) error
	DeleteStatus(ctx context.Context, id uint64) error
}

type StatusRepository struct {
	storage *pgxpool.Pool
}

func NewStatusRepository(storage *pgxpool.Pool) StatusRepositoryInterface {
	return &StatusRepository{storage: storage}
}

func (r *StatusRepository) GetStatuses(ctx context.Context) ([]entities.Status, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name, code, created_at, updated_at FROM statuses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Status
	for rows.Next() {
		var s entities.Status
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *StatusRepository) FindStatus(ctx context.Context, id uint64) (*entities.Status, error) {
	var s entities.Status
	err := r.storage.QueryRow(ctx,
		"SELECT id, name, code, created_at, updated_at FROM statuses WHERE id = $1", id,
	).Scan(&s.ID, &s.Name, &s.Code, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *StatusRepository) CreateStatus(ctx context.Context, payload dto.CreateStatusDTO) error {
	_, err := r.storage.Exec(ctx, "INSERT INTO statuses (name, code) VALUES ($1, $2)", payload.Name, payload.Code)
	return err
}

func (r *StatusRepository) UpdateStatus(ctx context.Context, id uint64, payload dto.UpdateStatusDTO) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE statuses SET name = COALESCE($1, name), code = COALESCE($2, code), updated_at = CURRENT_TIMESTAMP WHERE id = $3",
		payload.Name, payload.Code, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *StatusRepository) DeleteStatus(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM statuses WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
