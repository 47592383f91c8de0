package main

import (
	"flag"
	"log"

	"asset-system/db"
	"asset-system/pkg/config"
	"asset-system/pkg/database/postgresql"
	"asset-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Preparação do banco de dados")
	log.Println("======================================================")

	runMigrate := flag.Bool("migrate", false, "Aplicar as migrações pendentes antes de semear")
	runDown := flag.Bool("down", false, "Desfazer a última migração aplicada e sair")
	runCore := flag.Bool("core", false, "Semear os dicionários (fabricantes, status, planos)")
	runAdmin := flag.Bool("admin", false, "Criar o usuário administrador inicial")
	runDemo := flag.Bool("demo", false, "Semear clientes e ativos de demonstração")
	runAll := flag.Bool("all", false, "Executar tudo (equivale a -migrate -core -admin -demo)")

	flag.Parse()

	if !*runMigrate && !*runDown && !*runCore && !*runAdmin && !*runDemo && !*runAll {
		log.Println("❌ Nenhuma etapa selecionada.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemplos:")
		log.Println("  go run ./seeders/cmd/seed -migrate -core")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	log.Println("📦 DSN em uso:", cfg.Postgres.DSN)

	if *runDown {
		if err := db.MigrateDown(cfg.Postgres.DSN); err != nil {
			log.Fatalf("erro ao desfazer migração: %v", err)
		}
		log.Println("  ✔ Última migração desfeita.")
		return
	}

	if *runAll || *runMigrate {
		if err := db.MigrateUp(cfg.Postgres.DSN); err != nil {
			log.Fatalf("erro nas migrações: %v", err)
		}
		log.Println("  ✔ Migrações aplicadas.")
		log.Println("======================================================")
	}

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCore {
		seeders.SeedDictionaries(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runAdmin {
		seeders.SeedAdminUser(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runDemo {
		seeders.SeedDemoData(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Concluído.")
}
