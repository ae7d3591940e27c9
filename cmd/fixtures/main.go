package main

import (
	"fmt"
	"log"
	"os"

	"github.com/OmarTheProgrammerr/MasjidOmar/config"
	"github.com/OmarTheProgrammerr/MasjidOmar/fixtures"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer config.CloseDatabase(db)

	f := fixtures.NewFixtures(db)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "generate":
		if err := f.GenerateTestData(); err != nil {
			log.Fatal("Fixtures generation failed:", err)
		}
	case "clean":
		if err := f.CleanTestData(); err != nil {
			log.Fatal("Fixtures cleanup failed:", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate - Seed demo teams and matches")
	fmt.Println("  go run ./cmd/fixtures clean    - Remove seeded data")
}
