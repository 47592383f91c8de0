package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/pkg/utils"
)

// SeedAdminUser cria o usuário administrador inicial, caso não exista.
func SeedAdminUser(db *pgxpool.Pool) {
	if err := seedAdmin(context.Background(), db); err != nil {
		log.Fatalf("erro ao criar usuário administrador: %v", err)
	}
}

func seedAdmin(ctx context.Context, db *pgxpool.Pool) error {
	const email = "admin@asset-system.local"

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("  - Usuário administrador já existe, pulando.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("erro ao verificar usuário existente: %w", err)
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3)",
		"Administrador", email, hash)
	if err != nil {
		return fmt.Errorf("erro ao inserir administrador: %w", err)
	}

	log.Println("  ✔ Usuário administrador criado (troque a senha no primeiro acesso).")
	return nil
}
