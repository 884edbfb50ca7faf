// Command migrate creates or updates the database schema without starting
// the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/config"
	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = database.Close(db) }()

	fmt.Println("schema is up to date")
}
