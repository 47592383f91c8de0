package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData insere clientes e ativos de demonstração. Pensado para
// ambientes de desenvolvimento; não roda em produção.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()

	if err := seedDemoClients(ctx, db); err != nil {
		log.Fatalf("erro ao semear clientes de demonstração: %v", err)
	}
	if err := seedDemoAssets(ctx, db); err != nil {
		log.Fatalf("erro ao semear ativos de demonstração: %v", err)
	}
	log.Println("  ✔ Dados de demonstração semeados.")
}

func seedDemoClients(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Preenchendo 'clients'...")
	for _, c := range demoClientsData {
		var exists bool
		if err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM clients WHERE name = $1 AND deleted_at IS NULL)", c.Name,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err := db.Exec(ctx,
			"INSERT INTO clients (uuid, name, company) VALUES ($1, $2, $3)",
			uuid.NewString(), c.Name, c.Company)
		if err != nil {
			return fmt.Errorf("cliente %q: %w", c.Name, err)
		}
	}
	return nil
}

func seedDemoAssets(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Preenchendo 'assets'...")

	manufacturers, err := mapIDsByName(ctx, db, "manufacturers")
	if err != nil {
		return fmt.Errorf("erro ao carregar fabricantes: %w", err)
	}

	var availableStatusID uint64
	if err := db.QueryRow(ctx,
		"SELECT id FROM statuses WHERE code = 'AVAILABLE' LIMIT 1").Scan(&availableStatusID); err != nil {
		return fmt.Errorf("status 'AVAILABLE' não encontrado: %w", err)
	}

	for _, a := range demoAssetsData {
		manufacturerID, ok := manufacturers[a.Manufacturer]
		if !ok {
			log.Printf("AVISO: fabricante %q não encontrado, pulando ativo.", a.Manufacturer)
			continue
		}

		var exists bool
		if a.Type == "CHIP" {
			err = db.QueryRow(ctx,
				"SELECT EXISTS (SELECT 1 FROM assets WHERE iccid = $1)", a.ICCID).Scan(&exists)
		} else {
			err = db.QueryRow(ctx,
				"SELECT EXISTS (SELECT 1 FROM assets WHERE radio = $1)", a.Radio).Scan(&exists)
		}
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		_, err = db.Exec(ctx, `
			INSERT INTO assets (type, solution_id, manufacturer_id, status_id, iccid, line_number, radio, serial_number, model)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))`,
			a.Type, a.SolutionID, manufacturerID, availableStatusID,
			a.ICCID, a.LineNumber, a.Radio, a.SerialNumber, a.Model)
		if err != nil {
			return fmt.Errorf("ativo %s/%s: %w", a.Radio, a.ICCID, err)
		}
	}
	return nil
}

func mapIDsByName(ctx context.Context, db *pgxpool.Pool, table string) (map[string]uint64, error) {
	rows, err := db.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s WHERE deleted_at IS NULL", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]uint64)
	for rows.Next() {
		var id uint64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[name] = id
	}
	return out, rows.Err()
}
