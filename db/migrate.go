// Package db embarca as migrações SQL e as aplica com o goose.
package db

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigrateUp aplica todas as migrações pendentes.
func MigrateUp(dsn string) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("erro ao abrir conexão para migração: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	return nil
}

// MigrateDown desfaz a última migração aplicada.
func MigrateDown(dsn string) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("erro ao abrir conexão para migração: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Down(conn, "migrations"); err != nil {
		return fmt.Errorf("erro ao desfazer migração: %w", err)
	}
	return nil
}
