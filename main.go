package main

import (
	"os"

	"github.com/df07/go-tiled-pathtracer/cmd"
	"github.com/df07/go-tiled-pathtracer/pkg/log"
)

func main() {
	app := cmd.NewApp()
	if err := app.Run(os.Args); err != nil {
		log.New("pathtracer").Error(err)
		os.Exit(1)
	}
}
