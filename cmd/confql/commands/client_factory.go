package commands

import (
	"fmt"

	"confql/internal/config"
	"confql/pkg/confluence"
	"confql/pkg/logger"
)

// newConfluenceClient is a package-level variable to allow test injection of a mock.
var newConfluenceClient = func(cfg *config.Config, log *logger.Logger) confluence.API {
	return confluence.NewClient(
		cfg.Confluence.BaseURL,
		cfg.Confluence.Username,
		cfg.Confluence.APIToken,
		log,
		confluence.WithExpand(cfg.ExpandConfig()),
	)
}

// setup loads the configuration and builds a logger and client from it.
func setup() (*config.Config, *logger.Logger, confluence.API, error) {
	log := logger.New(verbose)

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, log, newConfluenceClient(cfg, log), nil
}
