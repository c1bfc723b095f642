package main

import (
	"context"
	"os"

	"sistema-provale/cmd/bootstrap"
	"sistema-provale/config"
	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/repository"
	"sistema-provale/internal/seed"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := bootstrap.Database(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	seeder := seed.NewSeeder(
		db,
		log,
		repository.NewEstadoRepository(),
		repository.NewCatalogoRepository[entity.Rol]("codRol"),
		repository.NewCatalogoRepository[entity.TipoMovimiento]("codTipoMovimiento"),
		repository.NewUsuarioRepository(),
	)
	if err := seeder.Run(context.Background(), os.Getenv("SEED_ADMIN_PASSWORD")); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Info("Seed completed")
}
