package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"multiblog/app/config"
	"multiblog/app/routes"
	"multiblog/pkg/logger"

	"github.com/dgraph-io/badger/v4"
)

const CliVersion = "1.0.0"

// exit is swapped out in tests so command paths can be exercised
// without terminating the test binary.
var exit = os.Exit

func main() {
	RealMain()
}

func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("multiblog version %s\n", CliVersion)
	case "serve":
		serve()
	case "init":
		initDb()
	case "clean":
		clean()
	case "backup":
		backup()
	case "restore":
		if len(os.Args) < 3 {
			fmt.Println("Error: backup file path required for restore")
			exit(1)
			return
		}
		restore(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: multiblog <command> [options]

Commands:
  help                Display this help message.
  version             Show version information.
  serve               Run the blog server.
  init                Initialize a new empty database.
  clean               Remove the blog database.
  backup              Create a backup of the database.
  restore <file>      Restore database from backup.
`
	fmt.Println(helpText)
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		exit(1)
	}
	return cfg
}

// serve starts the blog server
func serve() {
	cfg := loadConfig()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	if err := cfg.ValidateServe(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	opts := badger.DefaultOptions(cfg.DB.Path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open Badger DB")
	}
	defer db.Close()

	router := routes.SetupRoutes(db, cfg, log)

	log.Info().Str("addr", cfg.Server.Addr).Msg("Starting blog server")
	if err := routes.StartServer(cfg, router); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

// initDb initializes a new empty database
func initDb() {
	cfg := loadConfig()
	dbPath := cfg.DB.Path

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database directory: %v\n", err)
		exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		exit(1)
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// clean removes the database
func clean() {
	cfg := loadConfig()
	dbPath := cfg.DB.Path

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to clean database: %v\n", err)
		exit(1)
	}
	fmt.Println("Database cleaned successfully")
}

// backup creates a backup of the database
func backup() {
	cfg := loadConfig()
	dbPath := cfg.DB.Path

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	if err := os.MkdirAll(cfg.DB.BackupDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create backup directory: %v\n", err)
		exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		exit(1)
	}
	defer db.Close()

	backupFile := filepath.Join(cfg.DB.BackupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create backup file: %v\n", err)
		exit(1)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to backup database: %v\n", err)
		exit(1)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup
func restore(backupFile string) {
	cfg := loadConfig()
	dbPath := cfg.DB.Path

	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(dbPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remove existing database: %v\n", err)
			exit(1)
		}
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database directory: %v\n", err)
		exit(1)
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		exit(1)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open backup file: %v\n", err)
		exit(1)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore database: %v\n", err)
		exit(1)
	}

	fmt.Println("Database restored successfully")
}
