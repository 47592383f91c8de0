package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	db "asset-system/internal/infrastructure/bd"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

const clientFields = "uuid, name, company, contact, responsible, created_at, updated_at"

var clientAllowedFilters = map[string]string{
	"name":       "name",
	"company":    "company",
	"created_at": "created_at",
}

type ClientRepositoryInterface interface {
	GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error)
	FindClient(ctx context.Context, clientUUID string) (*entities.Client, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error)
	UpdateClient(ctx context.Context, clientUUID string, payload dto.UpdateClientDTO) error
	DeleteClient(ctx context.Context, clientUUID string) error
}

type ClientRepository struct {
	storage *pgxpool.Pool
}

func NewClientRepository(storage *pgxpool.Pool) ClientRepositoryInterface {
	return &ClientRepository{storage: storage}
}

func (r *ClientRepository) GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(clientFields).
		From("clients").
		Where(sq.Eq{"deleted_at": nil})

	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"name": "%" + filter.Search + "%"})
	}
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("name ASC")
	}
	builder = db.ApplyListParams(builder, filter, clientAllowedFilters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []entities.Client
	for rows.Next() {
		var c entities.Client
		if err := rows.Scan(&c.UUID, &c.Name, &c.Company, &c.Contact, &c.Responsible, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := psql.Select("COUNT(*)").From("clients").Where(sq.Eq{"deleted_at": nil})
	if filter.Search != "" {
		countBuilder = countBuilder.Where(sq.ILike{"name": "%" + filter.Search + "%"})
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (r *ClientRepository) FindClient(ctx context.Context, clientUUID string) (*entities.Client, error) {
	query := "SELECT " + clientFields + " FROM clients WHERE uuid = $1 AND deleted_at IS NULL"

	var c entities.Client
	err := r.storage.QueryRow(ctx, query, clientUUID).Scan(
		&c.UUID, &c.Name, &c.Company, &c.Contact, &c.Responsible, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error) {
	newUUID := uuid.NewString()

	query := `
        INSERT INTO clients (uuid, name, company, contact, responsible)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.storage.Exec(ctx, query,
		newUUID,
		payload.Name,
		payload.Company,
		payload.Contact,
		payload.Responsible,
	)
	if err != nil {
		return nil, err
	}

	return r.FindClient(ctx, newUUID)
}

func (r *ClientRepository) UpdateClient(ctx context.Context, clientUUID string, payload dto.UpdateClientDTO) error {
	query := `
        UPDATE clients
        SET name        = COALESCE($1, name),
            company     = COALESCE($2, company),
            contact     = COALESCE($3, contact),
            responsible = COALESCE($4, responsible),
            updated_at  = CURRENT_TIMESTAMP
        WHERE uuid = $5 AND deleted_at IS NULL
    `
	result, err := r.storage.Exec(ctx, query,
		payload.Name,
		payload.Company,
		payload.Contact,
		payload.Responsible,
		clientUUID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) DeleteClient(ctx context.Context, clientUUID string) error {
	query := "UPDATE clients SET deleted_at = CURRENT_TIMESTAMP WHERE uuid = $1 AND deleted_at IS NULL"

	result, err := r.storage.Exec(ctx, query, clientUUID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
