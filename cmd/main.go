package main

import (
	"log"

	"github.com/gatherhub/gatherhub/cmd/app"
	"github.com/gatherhub/gatherhub/internal/adapters/config"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()
	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	a.Start()
}
