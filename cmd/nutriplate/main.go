package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/nutriplate/internal/api"
	"github.com/terraincognita07/nutriplate/internal/catalog"
	"github.com/terraincognita07/nutriplate/internal/cli"
	"github.com/terraincognita07/nutriplate/internal/db"
	"github.com/terraincognita07/nutriplate/internal/i18n"
	"github.com/terraincognita07/nutriplate/internal/security"
)

const usage = `usage:
  nutriplate [serve]
  nutriplate import-catalog <file.yaml|file.json>
  nutriplate gen-secret`

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	args := os.Args[1:]
	command := "serve"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	var err error
	switch command {
	case "serve":
		err = serve()
	case "import-catalog":
		if len(args) != 1 {
			log.Fatal(usage)
		}
		err = cli.RunImportCatalogCommand(os.Stdout, databaseDriver(), databaseDSN(), args[0])
	case "gen-secret":
		err = cli.RunGenerateSecretCommand(os.Stdout)
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		log.Fatalf("unknown command %q\n%s", command, usage)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}

func serve() error {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey, err := resolveSecretKey()
	if err != nil {
		return err
	}
	port, err := resolvePort()
	if err != nil {
		return err
	}
	cookieSecure := getEnvBool("COOKIE_SECURE", false)

	driver := databaseDriver()
	database, err := db.Open(driver, databaseDSN())
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	if getEnvBool("SEED_CATALOG", true) {
		foods, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("load default catalog: %w", err)
		}
		inserted, err := db.SeedCatalog(db.NewFoodRepository(database), foods)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if inserted > 0 {
			log.Printf("seeded %d foods into an empty catalog", inserted)
		}
	}

	i18nManager, err := i18n.NewManager(getEnv("DEFAULT_LANGUAGE", i18n.LangFR), os.Getenv("LOCALES_DIR"))
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(database, secretKey, location, i18nManager, cookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Nutriplate",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Nutriplate listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, driver, location.String())
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// csrfMiddlewareConfig uses the double-submit pattern: clients echo the cookie in X-CSRF-Token.
func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "header:X-CSRF-Token",
		CookieName:     "nutriplate_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	switch {
	case secret == "":
		return "", errors.New("SECRET_KEY is required (run `nutriplate gen-secret`)")
	case secret == "change_me_in_production", secret == "replace_with_at_least_32_random_characters":
		return "", errors.New("SECRET_KEY still holds a placeholder value")
	case len(secret) < security.MinSecretLength:
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", security.MinSecretLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(getEnv("PORT", "8080"))
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT %d out of range", port)
	}
	return strconv.Itoa(port), nil
}

func databaseDriver() string {
	return strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", db.DriverSQLite)))
}

// databaseDSN is DATABASE_DSN for postgres and DB_PATH for sqlite.
func databaseDSN() string {
	if databaseDriver() == db.DriverPostgres {
		return os.Getenv("DATABASE_DSN")
	}
	return getEnv("DB_PATH", filepath.Join("data", "nutriplate.db"))
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}
