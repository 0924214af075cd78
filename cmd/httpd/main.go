// Command httpd runs the construction productivity estimator HTTP service.
package main

import (
	"fmt"
	"os"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/sitecrew/estimator/internal/api"
	"github.com/sitecrew/estimator/internal/assistant"
	"github.com/sitecrew/estimator/internal/catalog"
	"github.com/sitecrew/estimator/internal/classify"
	"github.com/sitecrew/estimator/internal/config"
	"github.com/sitecrew/estimator/internal/conversation"
	"github.com/sitecrew/estimator/internal/logging"
	"github.com/sitecrew/estimator/internal/rank"
	"github.com/sitecrew/estimator/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "estimator: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting estimator",
		logging.String("version", cfg.Service.Version),
		logging.Int("port", cfg.Service.Port),
		logging.String("catalog_driver", cfg.Catalog.Driver))

	cat, closeCatalog, err := openCatalog(&cfg.Catalog)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer closeCatalog()

	tel := telemetry.NewProvider()
	reranker := rank.NewReranker(logger)
	machine := conversation.NewMachine(classify.New(logger), logger)
	asst := assistant.New(machine, cat, reranker, assistant.SearchConfig{
		TopK:           cfg.Search.TopK,
		MinConfidence:  cfg.Search.MinConfidence,
		CandidateLimit: cfg.Search.CandidateLimit,
	}, logger)

	handler := api.NewHandler(asst, reranker, cat, tel, logger)
	server := api.NewServer(handler, cfg, logger)

	return server.Run()
}

// openCatalog builds the catalog backend selected by the driver setting.
// The returned func releases whatever the backend holds open.
func openCatalog(cfg *config.Catalog) (catalog.Catalog, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		cat, err := catalog.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return cat, func() { _ = cat.Close() }, nil

	case "postgres":
		cat, err := catalog.OpenPostgres(catalog.PostgresConfig{
			Host:     cfg.Host,
			Port:     fmt.Sprintf("%d", cfg.Port),
			User:     cfg.User,
			Password: cfg.Password,
			DBName:   cfg.Database,
			SSLMode:  cfg.SSLMode,
		})
		if err != nil {
			return nil, nil, err
		}
		return cat, func() { _ = cat.Close() }, nil

	case "elasticsearch":
		client, err := es.NewClient(es.Config{
			Addresses: []string{cfg.ESURL},
			Username:  cfg.ESUsername,
			Password:  cfg.ESPassword,
		})
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewElasticsearch(client, cfg.ESIndex), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown catalog driver %q", cfg.Driver)
	}
}
