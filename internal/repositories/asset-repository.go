package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	db "asset-system/internal/infrastructure/bd"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

const assetFields = `a.id, a.type, a.solution_id, a.manufacturer_id, a.status_id,
	a.iccid, a.line_number, a.radio, a.serial_number, a.model, a.created_at, a.updated_at`

var assetAllowedFilters = map[string]string{
	"type":            "a.type",
	"solution_id":     "a.solution_id",
	"manufacturer_id": "a.manufacturer_id",
	"status_id":       "a.status_id",
	"created_at":      "a.created_at",
}

type AssetRepositoryInterface interface {
	GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error)
	GetAvailableAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error)
	FindAsset(ctx context.Context, id uint64) (*entities.Asset, error)
	FindAssetsByIDs(ctx context.Context, ids []uint64) ([]entities.Asset, error)
	CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error)
	UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error
	DeleteAsset(ctx context.Context, id uint64) error
}

type AssetRepository struct {
	storage *pgxpool.Pool
}

func NewAssetRepository(storage *pgxpool.Pool) AssetRepositoryInterface {
	return &AssetRepository{storage: storage}
}

func (r *AssetRepository) baseSelect() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(assetFields+", m.id, m.name, s.id, s.name, s.code").
		From("assets a").
		LeftJoin("manufacturers m ON m.id = a.manufacturer_id").
		LeftJoin("statuses s ON s.id = a.status_id").
		Where(sq.Eq{"a.deleted_at": nil})
}

func (r *AssetRepository) scanAssets(rows pgx.Rows) ([]entities.Asset, error) {
	var assets []entities.Asset
	for rows.Next() {
		var a entities.Asset
		var mID *uint64
		var mName *string
		var sID *uint64
		var sName, sCode *string

		if err := rows.Scan(
			&a.ID, &a.Type, &a.SolutionID, &a.ManufacturerID, &a.StatusID,
			&a.ICCID, &a.LineNumber, &a.Radio, &a.SerialNumber, &a.Model,
			&a.CreatedAt, &a.UpdatedAt,
			&mID, &mName, &sID, &sName, &sCode,
		); err != nil {
			return nil, err
		}

		if mID != nil && mName != nil {
			a.Manufacturer = &entities.Manufacturer{ID: *mID, Name: *mName}
		}
		if sID != nil && sName != nil {
			a.Status = &entities.Status{ID: *sID, Name: *sName, Code: sCode}
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *AssetRepository) listWith(ctx context.Context, builder sq.SelectBuilder, filter types.Filter) ([]entities.Asset, uint64, error) {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"a.iccid": like},
			sq.ILike{"a.radio": like},
			sq.ILike{"a.serial_number": like},
			sq.ILike{"a.line_number": like},
		})
	}
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("a.created_at DESC")
	}

	countBuilder := builder

	builder = db.ApplyListParams(builder, filter, assetAllowedFilters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	assets, err := r.scanAssets(rows)
	if err != nil {
		return nil, 0, err
	}

	// Contagem sem paginação, com os mesmos filtros facetados.
	countBuilder = db.ApplyListParams(countBuilder, types.Filter{Filter: filter.Filter}, assetAllowedFilters)
	countQuery, countArgs, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").FromSelect(countBuilder, "sub").ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

func (r *AssetRepository) GetAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	return r.listWith(ctx, r.baseSelect(), filter)
}

// GetAvailableAssets devolve os ativos sem associação ativa, que é o que o
// assistente de criação lista.
func (r *AssetRepository) GetAvailableAssets(ctx context.Context, filter types.Filter) ([]entities.Asset, uint64, error) {
	builder := r.baseSelect().Where(`NOT EXISTS (
		SELECT 1 FROM associations ass
		WHERE ass.deleted_at IS NULL
		  AND ass.status = TRUE
		  AND (ass.equipment_id = a.id OR ass.chip_id = a.id)
	)`)
	return r.listWith(ctx, builder, filter)
}

func (r *AssetRepository) FindAsset(ctx context.Context, id uint64) (*entities.Asset, error) {
	builder := r.baseSelect().Where(sq.Eq{"a.id": id})
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets, err := r.scanAssets(rows)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &assets[0], nil
}

func (r *AssetRepository) FindAssetsByIDs(ctx context.Context, ids []uint64) ([]entities.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	builder := r.baseSelect().Where(sq.Eq{"a.id": ids})
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanAssets(rows)
}

func (r *AssetRepository) CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error) {
	query := `
        INSERT INTO assets (type, solution_id, manufacturer_id, status_id, iccid, line_number, radio, serial_number, model)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.Type,
		payload.SolutionID,
		payload.ManufacturerID,
		payload.StatusID,
		payload.ICCID,
		payload.LineNumber,
		payload.Radio,
		payload.SerialNumber,
		payload.Model,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AssetRepository) UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error {
	query := `
        UPDATE assets
        SET solution_id     = COALESCE($1, solution_id),
            manufacturer_id = COALESCE($2, manufacturer_id),
            status_id       = COALESCE($3, status_id),
            iccid           = COALESCE($4, iccid),
            line_number     = COALESCE($5, line_number),
            radio           = COALESCE($6, radio),
            serial_number   = COALESCE($7, serial_number),
            model           = COALESCE($8, model),
            updated_at      = CURRENT_TIMESTAMP
        WHERE id = $9 AND deleted_at IS NULL
    `
	result, err := r.storage.Exec(ctx, query,
		payload.SolutionID,
		payload.ManufacturerID,
		payload.StatusID,
		payload.ICCID,
		payload.LineNumber,
		payload.Radio,
		payload.SerialNumber,
		payload.Model,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AssetRepository) DeleteAsset(ctx context.Context, id uint64) error {
	query := "UPDATE assets SET deleted_at = CURRENT_TIMESTAMP WHERE id = $1 AND deleted_at IS NULL"

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
