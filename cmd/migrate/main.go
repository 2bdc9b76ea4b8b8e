package main

import (
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/age26/age26-backend/pkg/config"
	"github.com/age26/age26-backend/pkg/logger"
)

// Runner de migrações goose sobre o driver stdlib do pgx.
// Uso: go run ./cmd/migrate [-dir ./migrations] [up|down|status|...]
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "diretório com os arquivos de migração")
	flag.Parse()

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexão ao PostgreSQL")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("fechar conexão")
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialeto goose")
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("goose")
	}

	log.Info().Str("command", command).Msg("migração concluída")
}
