// Command doccheck validates a games document against the data contract, so
// dataset generation pipelines can verify their output before deploying it.
//
// Usage: doccheck <path-to-games.json>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmatos/gamewatch/internal/docstore"
	"github.com/dmatos/gamewatch/internal/models"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: doccheck <path-to-games.json>")
		os.Exit(2)
	}
	path := os.Args[1]

	loader := docstore.FileLoader{Path: path}
	doc, err := loader.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "doccheck: %s: %v\n", path, err)
		os.Exit(1)
	}

	byStatus := make(map[models.Status]int)
	for _, g := range doc.Games {
		byStatus[g.Release.Status()]++
	}

	fmt.Printf("%s: ok\n", path)
	fmt.Printf("  schema:      %s\n", doc.SchemaVersion)
	fmt.Printf("  generatedAt: %s\n", doc.GeneratedAt)
	if doc.AsOf != "" {
		fmt.Printf("  asOf:        %s\n", doc.AsOf)
	}
	fmt.Printf("  games:       %d\n", len(doc.Games))
	for _, status := range models.Statuses {
		if n := byStatus[status]; n > 0 {
			fmt.Printf("    %-17s %d\n", status, n)
		}
	}
}
