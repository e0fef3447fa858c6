package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/SscSPs/hord_manager/internal/core/services"
	"github.com/SscSPs/hord_manager/internal/dto"
	"github.com/SscSPs/hord_manager/internal/platform/config"
	"github.com/SscSPs/hord_manager/internal/utils"
	"github.com/SscSPs/hord_manager/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, slog.Default()); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"status": "migrated"})
		},
	}
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Ensure the USD base currency exists and optionally upsert currencies from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				if err := e.services.StaticData.InitializeStaticData(ctx); err != nil {
					return err
				}
				seeded := []string{domain.BaseCurrencyName}
				if file == "" {
					return printJSON(cmd.OutOrStdout(), map[string]any{"seeded": seeded})
				}

				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read seed file: %w", err)
				}
				var reqs []dto.CreateCurrencyRequest
				if err := json.Unmarshal(raw, &reqs); err != nil {
					return fmt.Errorf("parse seed file: %w", err)
				}
				for _, req := range reqs {
					if strings.EqualFold(req.Name, domain.BaseCurrencyName) {
						continue
					}
					if _, err := e.services.Currency.CreateCurrency(ctx, req, true, services.SystemActor); err != nil {
						return fmt.Errorf("seed %s: %w", req.Name, err)
					}
					seeded = append(seeded, req.Name)
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"seeded": seeded})
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON array of currency definitions")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var period int
	cmd := &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount between two currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimalArg("amount", args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				result, err := e.services.Conversion.Convert(ctx, amount, args[1], args[2], periodPtr(period))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ConversionResponse{
					Amount: amount, From: args[1], To: args[2], Result: result, Period: periodPtr(period),
				})
			})
		},
	}
	periodFlag(cmd, &period)
	return cmd
}

func newToUSDCmd() *cobra.Command {
	var period int
	cmd := &cobra.Command{
		Use:   "to-usd <amount> <currency>",
		Short: "Convert a currency amount to USD",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimalArg("amount", args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				usd, err := e.services.Conversion.CurrencyToUSD(ctx, amount, args[1], periodPtr(period))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ConversionResponse{
					Amount: amount, From: args[1], To: domain.BaseCurrencyName, Result: usd, Period: periodPtr(period),
				})
			})
		},
	}
	periodFlag(cmd, &period)
	return cmd
}

func newFromUSDCmd() *cobra.Command {
	var period int
	cmd := &cobra.Command{
		Use:   "from-usd <amount> <currency>",
		Short: "Convert a USD amount into a currency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			usd, err := parseDecimalArg("amount", args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				result, err := e.services.Conversion.USDToCurrency(ctx, usd, args[1], periodPtr(period))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ConversionResponse{
					Amount: usd, From: domain.BaseCurrencyName, To: args[1], Result: result, Period: periodPtr(period),
				})
			})
		},
	}
	periodFlag(cmd, &period)
	return cmd
}

func newBreakdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown <amount> <currency>",
		Short: "Split an amount into the denominations of its currency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimalArg("amount", args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				b, err := e.services.Conversion.Breakdown(ctx, amount, args[1])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ToBreakdownResponse(b))
			})
		},
	}
}

func newRatesCmd() *cobra.Command {
	var (
		base   string
		period int
	)
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Print the exchange rate table against a base currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				table, err := e.services.Conversion.Rates(ctx, base, periodPtr(period))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ToRatesResponse(table))
			})
		},
	}
	cmd.Flags().StringVar(&base, "base", domain.BaseCurrencyName, "base currency")
	periodFlag(cmd, &period)
	return cmd
}

func newDisplayCmd() *cobra.Command {
	var (
		targets []string
		period  int
	)
	cmd := &cobra.Command{
		Use:   "display <usd-value>",
		Short: "Show a USD value in several currencies with breakdowns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			usd, err := parseDecimalArg("usd-value", args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				view, err := e.services.Conversion.Display(ctx, usd, targets, periodPtr(period))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ToDisplayResponse(view))
			})
		},
	}
	cmd.Flags().StringSliceVar(&targets, "to", nil, "target currencies (default: USD and every registered currency)")
	periodFlag(cmd, &period)
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Read a GM password from stdin and print its bcrypt hash for GM_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return err
				}
				return errors.New("no password on stdin")
			}
			hash, err := utils.HashPassword(strings.TrimRight(scanner.Text(), "\r"))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"hash": hash})
		},
	}
}
