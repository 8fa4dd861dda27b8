package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vijayguhan10/fourtrip-partner/internal/ratelimiter"
	"github.com/vijayguhan10/fourtrip-partner/internal/session"
	"github.com/vijayguhan10/fourtrip-partner/internal/store"
)

var version = "1.0.0"

type config struct {
	apiURL      string
	stateFile   string
	rateLimiter ratelimiter.Config
}

type application struct {
	config  config
	logger  *zap.SugaredLogger
	session *session.Store
	store   store.Storage
}

// LoadRateLimiterConfig retrieves outbound throttle settings from environment variables
func LoadRateLimiterConfig(logger *zap.SugaredLogger) ratelimiter.Config {
	// Default values
	defaultRequests := 30
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			logger.Warnw("invalid RATELIMITER_REQUESTS_COUNT, using default", "value", val, "default", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			logger.Warnw("invalid RATE_LIMITER_ENABLED, using default", "value", val, "default", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stderr)), level)

	return zap.New(core).Sugar(), nil
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fourtrip/state.json"
	}
	return filepath.Join(home, ".fourtrip", "state.json")
}

func usage() {
	fmt.Fprintf(os.Stderr, `partnerctl %s - FourTrip partner portal

Usage:
  partnerctl <command> [flags]

Commands:
  login       sign in as a partner role
  logout      sign out of the active role
  register    create a new partner account
  profile     show or update the business profile
  dishes      manage restaurant dishes
  products    manage shop products
  activities  manage activity listings
  bookings    view and update reservations
  reviews     view customer reviews
  locations   browse the location dropdown

Environment:
  FOURTRIP_API_URL     backend base URL (required)
  FOURTRIP_STATE_FILE  session state file (default ~/.fourtrip/state.json)
`, version)
}

func main() {
	// .env is optional for the CLI
	_ = godotenv.Load()

	logger, err := NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config{
		apiURL:      os.Getenv("FOURTRIP_API_URL"),
		stateFile:   os.Getenv("FOURTRIP_STATE_FILE"),
		rateLimiter: LoadRateLimiterConfig(logger),
	}
	if cfg.apiURL == "" {
		logger.Fatal("FOURTRIP_API_URL is not set")
	}
	if cfg.stateFile == "" {
		cfg.stateFile = defaultStateFile()
	}

	kv, err := session.NewFileStorage(cfg.stateFile)
	if err != nil {
		logger.Fatal(err)
	}
	sess := session.NewStore(kv)

	client := store.NewClient(cfg.apiURL, sess, logger)
	if cfg.rateLimiter.Enabled {
		client.SetLimiter(ratelimiter.NewFixedWindowLimiter(
			cfg.rateLimiter.RequestsPerTimeFrame,
			cfg.rateLimiter.TimeFrame,
		))
	}

	storage, err := store.NewStorage(client)
	if err != nil {
		logger.Fatal(err)
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		session: sess,
		store:   storage,
	}

	if err := app.run(os.Args[1], os.Args[2:]); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// commandContext gives every command one bounded lifetime and cancels it on
// Ctrl-C, which also abandons any in-flight upload batch.
func commandContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	return ctx, func() {
		cancel()
		stop()
	}
}

func (app *application) run(command string, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	switch command {
	case "login":
		return app.runLogin(ctx, args)
	case "logout":
		return app.runLogout(args)
	case "register":
		return app.runRegister(ctx, args)
	case "profile":
		return app.runProfile(ctx, args)
	case "dishes":
		return runListing(ctx, app.dishes(), args)
	case "products":
		return runListing(ctx, app.products(), args)
	case "activities":
		return runListing(ctx, app.activities(), args)
	case "bookings":
		return app.runBookings(ctx, args)
	case "reviews":
		return app.runReviews(ctx, args)
	case "locations":
		return app.runLocations(ctx, args)
	case "help", "-h", "--help":
		usage()
		return nil
	}
	usage()
	return fmt.Errorf("unknown command %q", command)
}
