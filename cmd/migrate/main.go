// Comando de migraciones: aplica el esquema embebido con goose.
//
//	go run ./cmd/migrate        aplica las migraciones pendientes
//	go run ./cmd/migrate status  muestra el estado
package main

import (
	"database/sql"
	"embed"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Consignado-api/pkg/config"
	"github.com/jhoicas/Consignado-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión")
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialecto goose")
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		err = goose.Up(db, "migrations")
	case "status":
		err = goose.Status(db, "migrations")
	default:
		log.Fatal().Str("command", command).Msg("comando desconocido")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migración")
	}
	log.Info().Str("command", command).Msg("migraciones aplicadas")
}
