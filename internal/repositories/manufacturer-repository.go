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

type ManufacturerRepositoryInterface interface {
	GetManufacturers(ctx context.Context) ([]entities.Manufacturer, error)
	FindManufacturer(ctx context.Context, id uint64) (*entities.Manufacturer, error)
	CreateManufacturer(ctx context.Context, payload dto.CreateManufacturerDTO) error
	UpdateManufacturer(ctx context.Context, id uint64, payload dto.UpdateManufacturerDTO) error
	DeleteManufacturer(ctx context.Context, id uint64) error
}

type ManufacturerRepository struct {
	storage *pgxpool.Pool
}

func NewManufacturerRepository(storage *pgxpool.Pool) ManufacturerRepositoryInterface {
	return &ManufacturerRepository{storage: storage}
}

func (r *ManufacturerRepository) GetManufacturers(ctx context.Context) ([]entities.Manufacturer, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name, created_at, updated_at FROM manufacturers ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Manufacturer
	for rows.Next() {
		var m entities.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *ManufacturerRepository) FindManufacturer(ctx context.Context, id uint64) (*entities.Manufacturer, error) {
	var m entities.Manufacturer
	err := r.storage.QueryRow(ctx,
		"SELECT id, name, created_at, updated_at FROM manufacturers WHERE id = $1", id,
	).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *ManufacturerRepository) CreateManufacturer(ctx context.Context, payload dto.CreateManufacturerDTO) error {
	_, err := r.storage.Exec(ctx, "INSERT INTO manufacturers (name) VALUES ($1)", payload.Name)
	return err
}

func (r *ManufacturerRepository) UpdateManufacturer(ctx context.Context, id uint64, payload dto.UpdateManufacturerDTO) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE manufacturers SET name = COALESCE($1, name), updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		payload.Name, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ManufacturerRepository) DeleteManufacturer(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM manufacturers WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
