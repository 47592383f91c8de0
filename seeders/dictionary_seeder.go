package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries preenche fabricantes, status e planos. Idempotente: usa
// ON CONFLICT no nome.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()

	if err := seedManufacturers(ctx, db); err != nil {
		log.Fatalf("erro ao semear fabricantes: %v", err)
	}
	if err := seedStatuses(ctx, db); err != nil {
		log.Fatalf("erro ao semear status: %v", err)
	}
	if err := seedPlans(ctx, db); err != nil {
		log.Fatalf("erro ao semear planos: %v", err)
	}
	log.Println("  ✔ Dicionários semeados.")
}

func seedManufacturers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Preenchendo 'manufacturers'...")
	for _, m := range manufacturersData {
		_, err := db.Exec(ctx,
			"INSERT INTO manufacturers (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", m.Name)
		if err != nil {
			return fmt.Errorf("fabricante %q: %w", m.Name, err)
		}
	}
	return nil
}

func seedStatuses(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Preenchendo 'statuses'...")
	for _, s := range statusesData {
		_, err := db.Exec(ctx,
			"INSERT INTO statuses (name, code) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", s.Name, s.Code)
		if err != nil {
			return fmt.Errorf("status %q: %w", s.Name, err)
		}
	}
	return nil
}

func seedPlans(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Preenchendo 'plans'...")
	for _, p := range plansData {
		_, err := db.Exec(ctx,
			"INSERT INTO plans (name, gb) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", p.Name, p.GB)
		if err != nil {
			return fmt.Errorf("plano %q: %w", p.Name, err)
		}
	}
	return nil
}
