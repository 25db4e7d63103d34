package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gym-routines-api/internal/config"
	"gym-routines-api/internal/database"
	"gym-routines-api/internal/seed"
)

func main() {
	// Only show errors from the packages we call into
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to initialize schema: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "seed":
		handleSeed(db)
	case "list":
		handleList(db)
	case "view":
		handleView(db)
	case "health":
		handleHealth(db)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown command '%s'\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleSeed(db *database.DB) {
	if err := seed.Load(db); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to seed database: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Sample data loaded")
}

func handleList(db *database.DB) {
	routines, err := db.ListRoutines()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to list routines: %v\n", err)
		os.Exit(1)
	}

	if len(routines) == 0 {
		fmt.Println("No routines found.")
		return
	}

	fmt.Printf("Found %d routine(s):\n\n", len(routines))
	for _, routine := range routines {
		fmt.Printf("ID: %d\n", routine.ID)
		fmt.Printf("  Name: %s\n", routine.Name)
		if routine.Description != nil {
			fmt.Printf("  Description: %s\n", *routine.Description)
		}
		fmt.Printf("  Created: %s\n", routine.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println()
	}
}

func handleView(db *database.DB) {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Error: view requires a routine id")
		os.Exit(1)
	}

	id, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid routine id: %s\n", os.Args[2])
		os.Exit(1)
	}

	detail, err := db.GetRoutineDetail(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to get routine: %v\n", err)
		os.Exit(1)
	}
	if detail == nil {
		fmt.Fprintf(os.Stderr, "Error: Routine %d not found\n", id)
		os.Exit(1)
	}

	fmt.Printf("%s (id %d)\n", detail.Name, detail.ID)
	if detail.Description != nil {
		fmt.Printf("%s\n", *detail.Description)
	}
	fmt.Printf("Created: %s\n\n", detail.CreatedAt.Format("2006-01-02 15:04:05"))

	if len(detail.Exercises) == 0 {
		fmt.Println("No exercises.")
		return
	}

	for _, ex := range detail.Exercises {
		weight := "bodyweight"
		if ex.Weight != nil {
			weight = fmt.Sprintf("%d kg", *ex.Weight)
		}
		fmt.Printf("  [%s] %s: %dx%d @ %s\n", ex.Weekday, ex.Name, ex.Sets, ex.Reps, weight)
		if ex.Notes != nil && *ex.Notes != "" {
			fmt.Printf("      %s\n", *ex.Notes)
		}
	}
}

func handleHealth(db *database.DB) {
	if err := db.Health(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Database unhealthy: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Database healthy")
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed        Load sample routines when the database is empty")
	fmt.Println("  list        List all routines")
	fmt.Println("  view <id>   Show a routine with its exercises")
	fmt.Println("  health      Check the database connection")
	fmt.Println("  help        Show this help")
}
