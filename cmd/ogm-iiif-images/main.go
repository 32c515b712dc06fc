package main

import (
	"context"
	"log"

	"github.com/opengeometadata/go-ogm-record/app/iiifimages"
)

func main() {

	ctx := context.Background()

	err := iiifimages.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to list IIIF images, %v", err)
	}
}
