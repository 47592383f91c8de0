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

type AssociationTypeRepositoryInterface interface {
	GetAssociationTypes(ctx context.Context) ([]entities.AssociationType, error)
	FindAssociationType(ctx context.Context, id uint64) (*entities.AssociationType, error)
	CreateAssociationType(ctx context.Context, payload dto.CreateAssociationTypeDTO) error
	UpdateAssociationType(ctx context.Context, id uint64, payload dto.UpdateAssociationTypeDTO) error
}

type AssociationTypeRepository struct {
	storage *pgxpool.Pool
}

func NewAssociationTypeRepository(storage *pgxpool.Pool) AssociationTypeRepositoryInterface {
	return &AssociationTypeRepository{storage: storage}
}

func (r *AssociationTypeRepository) GetAssociationTypes(ctx context.Context) ([]entities.AssociationType, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name, created_at, updated_at FROM association_types ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.AssociationType
	for rows.Next() {
		var t entities.AssociationType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *AssociationTypeRepository) FindAssociationType(ctx context.Context, id uint64) (*entities.AssociationType, error) {
	var t entities.AssociationType
	err := r.storage.QueryRow(ctx,
		"SELECT id, name, created_at, updated_at FROM association_types WHERE id = $1", id,
	).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *AssociationTypeRepository) CreateAssociationType(ctx context.Context, payload dto.CreateAssociationTypeDTO) error {
	_, err := r.storage.Exec(ctx, "INSERT INTO association_types (name) VALUES ($1)", payload.Name)
	return err
}

func (r *AssociationTypeRepository) UpdateAssociationType(ctx context.Context, id uint64, payload dto.UpdateAssociationTypeDTO) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE association_types SET name = COALESCE($1, name), updated_at = CURRENT_TIMESTAMP WHERE id = $2",
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
