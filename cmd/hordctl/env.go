package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	portssvc "github.com/SscSPs/hord_manager/internal/core/ports/services"
	"github.com/SscSPs/hord_manager/internal/core/services"
	"github.com/SscSPs/hord_manager/internal/platform/config"
	"github.com/SscSPs/hord_manager/internal/repositories/database/pgsql"
	"github.com/SscSPs/hord_manager/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// env is the wiring shared by every database-backed command.
type env struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:      cfg,
		pool:     pool,
		services: services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool)),
	}, nil
}

func (e *env) Close() {
	e.pool.Close()
}

// withEnv opens the database for the duration of fn.
func withEnv(cmd *cobra.Command, fn func(ctx context.Context, e *env) error) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(ctx, e)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseDecimalArg(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}

// periodFlag registers --period; zero means "latest".
func periodFlag(cmd *cobra.Command, p *int) {
	cmd.Flags().IntVar(p, "period", 0, "price period to resolve against (default: latest)")
}

func periodPtr(p int) *int {
	if p <= 0 {
		return nil
	}
	return &p
}
