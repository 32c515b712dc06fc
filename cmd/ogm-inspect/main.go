package main

import (
	"context"
	"log"

	"github.com/opengeometadata/go-ogm-record/app/inspect"
)

func main() {

	ctx := context.Background()

	err := inspect.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to inspect records, %v", err)
	}
}
