package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/redis/go-redis/v9"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/commands"
	"workforce/backend/internal/pkg/config"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("startup: %+v", err)
	}
}

func run() error {
	var flags struct {
		Port    string `conf:"default::8080"`
		Migrate bool   `conf:"default:true"`
	}

	if err := conf.Parse(os.Args[1:], "WORKFORCE", &flags); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("WORKFORCE", &flags)
			if err != nil {
				return err
			}
			fmt.Println(usage)
			return nil
		}
		return err
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	postgresDB := postgresql.NewDB(postgresql.Config{
		Username:   cfg.DBUsername,
		Password:   cfg.DBPassword,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		Name:       cfg.DBName,
		DisableTLS: cfg.DisableTLS,
	})
	defer postgresDB.Close()

	if flags.Migrate {
		commands.MigrateUP(postgresDB)
	}

	redisDB := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisDB.Close()

	tokenAuth := auth.NewAuth(cfg.JWTKey)

	app := web.NewApp()
	r := router.NewRouter(app, postgresDB, redisDB, flags.Port, tokenAuth, cfg)

	log.Printf("listening on %s", flags.Port)
	return r.Init()
}
