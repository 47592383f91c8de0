package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/entities"
	db "asset-system/internal/infrastructure/bd"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/types"
)

const associationFields = `ass.id, ass.client_id, ass.equipment_id, ass.chip_id,
	ass.association_type_id, ass.entry_date, ass.exit_date, ass.plan_id, ass.plan_gb,
	ass.ssid, ass.pass, ass.notes, ass.status, ass.created_at, ass.updated_at`

const associationJoinedFields = associationFields + `,
	c.uuid, c.name, c.company, c.contact, c.responsible,
	e.id, e.type, e.solution_id, e.manufacturer_id, e.status_id, e.radio, e.serial_number, e.model,
	ch.id, ch.type, ch.solution_id, ch.manufacturer_id, ch.status_id, ch.iccid, ch.line_number`

var associationAllowedFilters = map[string]string{
	"status":              "ass.status",
	"association_type_id": "ass.association_type_id",
	"client_id":           "ass.client_id",
	"created_at":          "ass.created_at",
}

type AssociationRepositoryInterface interface {
	GetAssociations(ctx context.Context, filter types.Filter) ([]entities.Association, uint64, error)
	GetAssociationsDetailed(ctx context.Context) ([]entities.Association, error)
	FindAssociation(ctx context.Context, id uint64) (*entities.Association, error)
	CreateAssociationTx(ctx context.Context, tx pgx.Tx, a entities.Association) (uint64, error)
	EndAssociation(ctx context.Context, id uint64, exitDate time.Time, notes *string) error
}

type AssociationRepository struct {
	storage *pgxpool.Pool
}

func NewAssociationRepository(storage *pgxpool.Pool) AssociationRepositoryInterface {
	return &AssociationRepository{storage: storage}
}

func (r *AssociationRepository) joinedSelect() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(associationJoinedFields).
		From("associations ass").
		LeftJoin("clients c ON c.uuid = ass.client_id").
		LeftJoin("assets e ON e.id = ass.equipment_id").
		LeftJoin("assets ch ON ch.id = ass.chip_id").
		Where(sq.Eq{"ass.deleted_at": nil})
}

func scanJoinedAssociations(rows pgx.Rows) ([]entities.Association, error) {
	var list []entities.Association
	for rows.Next() {
		var a entities.Association

		var cUUID, cName *string
		var cCompany, cContact, cResponsible *string

		var eID *uint64
		var eType *string
		var eSolutionID, eManufacturerID, eStatusID *uint64
		var eRadio, eSerial, eModel *string

		var chID *uint64
		var chType *string
		var chSolutionID, chManufacturerID, chStatusID *uint64
		var chICCID, chLine *string

		if err := rows.Scan(
			&a.ID, &a.ClientID, &a.EquipmentID, &a.ChipID,
			&a.AssociationTypeID, &a.EntryDate, &a.ExitDate, &a.PlanID, &a.PlanGB,
			&a.SSID, &a.Pass, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&cUUID, &cName, &cCompany, &cContact, &cResponsible,
			&eID, &eType, &eSolutionID, &eManufacturerID, &eStatusID, &eRadio, &eSerial, &eModel,
			&chID, &chType, &chSolutionID, &chManufacturerID, &chStatusID, &chICCID, &chLine,
		); err != nil {
			return nil, err
		}

		if cUUID != nil {
			a.Client = &entities.Client{
				UUID:        *cUUID,
				Name:        *cName,
				Company:     cCompany,
				Contact:     cContact,
				Responsible: cResponsible,
			}
		}
		if eID != nil {
			a.Equipment = &entities.Asset{
				ID:             *eID,
				Type:           *eType,
				SolutionID:     eSolutionID,
				ManufacturerID: eManufacturerID,
				StatusID:       derefOrZero(eStatusID),
				Radio:          eRadio,
				SerialNumber:   eSerial,
				Model:          eModel,
			}
		}
		if chID != nil {
			a.Chip = &entities.Asset{
				ID:             *chID,
				Type:           *chType,
				SolutionID:     chSolutionID,
				ManufacturerID: chManufacturerID,
				StatusID:       derefOrZero(chStatusID),
				ICCID:          chICCID,
				LineNumber:     chLine,
			}
		}

		list = append(list, a)
	}
	return list, rows.Err()
}

func derefOrZero(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

func (r *AssociationRepository) GetAssociations(ctx context.Context, filter types.Filter) ([]entities.Association, uint64, error) {
	builder := r.joinedSelect()
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("ass.created_at DESC")
	}
	builder = db.ApplyListParams(builder, filter, associationAllowedFilters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := scanJoinedAssociations(rows)
	if err != nil {
		return nil, 0, err
	}

	countBuilder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").
		From("associations ass").
		Where(sq.Eq{"ass.deleted_at": nil})
	countBuilder = db.ApplyListParams(countBuilder, types.Filter{Filter: filter.Filter}, associationAllowedFilters)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// GetAssociationsDetailed devolve a lista completa com os dados relacionados
// já juntados. O agrupamento, os filtros facetados e o resumo rodam em
// memória sobre esse resultado (a base é de dezenas a poucas centenas de
// associações).
func (r *AssociationRepository) GetAssociationsDetailed(ctx context.Context) ([]entities.Association, error) {
	builder := r.joinedSelect().OrderBy("ass.created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJoinedAssociations(rows)
}

func (r *AssociationRepository) FindAssociation(ctx context.Context, id uint64) (*entities.Association, error) {
	builder := r.joinedSelect().Where(sq.Eq{"ass.id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list, err := scanJoinedAssociations(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &list[0], nil
}

// CreateAssociationTx insere uma linha de associação dentro da transação do
// envio. O envio do assistente gera N inserções, uma por par resolvido ou
// ativo avulso.
func (r *AssociationRepository) CreateAssociationTx(ctx context.Context, tx pgx.Tx, a entities.Association) (uint64, error) {
	query := `
        INSERT INTO associations
            (client_id, equipment_id, chip_id, association_type_id, entry_date,
             plan_id, plan_gb, ssid, pass, notes, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `
	var id uint64
	err := tx.QueryRow(ctx, query,
		a.ClientID,
		a.EquipmentID,
		a.ChipID,
		a.AssociationTypeID,
		a.EntryDate,
		a.PlanID,
		a.PlanGB,
		a.SSID,
		a.Pass,
		a.Notes,
		a.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// EndAssociation registra a saída: seta exit_date, derruba o status e anexa
// as observações de encerramento às existentes.
func (r *AssociationRepository) EndAssociation(ctx context.Context, id uint64, exitDate time.Time, notes *string) error {
	query := `
        UPDATE associations
        SET exit_date  = $1,
            status     = FALSE,
            notes      = CASE
                WHEN $2::text IS NULL THEN notes
                WHEN notes IS NULL OR notes = '' THEN $2::text
                ELSE notes || E'\n' || $2::text
            END,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $3 AND deleted_at IS NULL
    `
	result, err := r.storage.Exec(ctx, query, exitDate, notes, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
