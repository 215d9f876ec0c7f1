package main

import (
	"log"
	"os"

	"github.com/jmuk/gcloud-go/internal/app"
)

func main() {
	app := app.New()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
