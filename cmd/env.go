package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/servicegrid/match-cli/internal/engine"
	"github.com/servicegrid/match-cli/internal/store"
)

// buildEngine constructs the matching engine from config, letting a non-empty
// strategy flag and a positive topK flag override the configured values.
func buildEngine(strategyFlag string, topKFlag int) (*engine.Engine, error) {
	strategy := cfg.Engine.Strategy
	if strategyFlag != "" {
		strategy = strategyFlag
	}
	topK := cfg.Engine.TopK
	if topKFlag > 0 {
		topK = topKFlag
	}

	return engine.New(engine.Options{
		Strategy:    strategy,
		Weights:     cfg.Engine.Weights,
		TopK:        topK,
		Concurrency: cfg.Engine.Concurrency,
	})
}

// openStore opens the run-history database and applies migrations.
func openStore(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open run store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate run store")
	}
	return st, nil
}
