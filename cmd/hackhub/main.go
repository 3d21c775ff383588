package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ASHU191/Coding-Hub/internal/app"
	"github.com/ASHU191/Coding-Hub/internal/logger"
	"github.com/ASHU191/Coding-Hub/pkg/identity"
)

var version = "dev"

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envString("DB_PATH", "hackhub.db"), "SQLite database path")
	baseURL := flag.String("baseurl", envString("BASE_URL", "http://localhost:8080"), "Public base URL (used in QR codes)")
	identityURL := flag.String("identity", envString("IDENTITY_URL", ""), "Identity provider URL (in-memory provider if not set)")
	logLevel := flag.String("loglevel", envString("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	logFormat := flag.String("logformat", envString("LOG_FORMAT", "text"), "Log format (text, json)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `HackHub - Hackathon Management Server

Usage:
  hackhub [options]

Options:
  -port int       HTTP server port (default 8080)
  -db string      SQLite database path (default "hackhub.db")
  -baseurl str    Public base URL used in QR codes
  -identity str   Identity provider URL (in-memory provider if not set)
  -loglevel str   Log level: debug, info, warn, error (default "info")
  -logformat str  Log format: text, json (default "text")
  -version        Show version and exit
  -help           Show this help message

Each option can also be set through the environment (PORT, DB_PATH,
BASE_URL, IDENTITY_URL, LOG_LEVEL, LOG_FORMAT), with a .env file
loaded on startup.

Examples:
  hackhub                              # Run on port 8080 with hackhub.db
  hackhub -port 9000 -db /data/hub.db  # Custom port and database
  hackhub -identity https://id.example.com
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("hackhub %s\n", version)
		os.Exit(0)
	}

	appLog := logger.NewWithOptions(logger.Options{
		Level:  logger.ParseLevel(*logLevel),
		Format: *logFormat,
		Out:    os.Stderr,
	})

	var provider identity.Client
	if *identityURL != "" {
		provider = identity.NewHTTPClient(appLog, *identityURL)
	} else {
		appLog.Warn("No identity provider configured, using in-memory provider")
		provider = identity.NewMockClient()
	}

	a, err := app.New(appLog, app.Config{DBPath: *dbPath, BaseURL: *baseURL}, provider)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", *port)
	if err := a.Run(addr); err != nil {
		log.Fatal("Server error:", err)
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
