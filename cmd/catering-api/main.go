package main

import (
	"log"
	"os"

	"github.com/Radithya02/Catering-Food/cmd/catering-api/app"
	"github.com/Radithya02/Catering-Food/configs"
)

func main() {
	env := os.Getenv("APP_ENV") // dev | staging | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	app, cleanup, err := app.InitWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	log.Printf("catering-api (%s) listening on %s", env, cfg.App.HTTPAddr)
	if err := app.Router.Run(cfg.App.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
