package main

import (
	"flag"
	"fmt"
	"os"

	"sistema-provale/config"
	"sistema-provale/internal/infrastructure/database"
	"sistema-provale/migrations"

	"github.com/sirupsen/logrus"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down>")
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		printUsage()
		os.Exit(1)
	}

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	migrator, err := database.NewMigrator(database.DSN(cfg.DB), migrations.FS, log)
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}
	defer migrator.Close()

	switch args[0] {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Errorf("Migration %s failed: %v", args[0], err)
		os.Exit(1)
	}
}
