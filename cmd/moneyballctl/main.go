// Command moneyballctl is the Moneyball admin CLI.
//
// Usage:
//
//	moneyballctl migrate
//	moneyballctl create-user --email a@x.com --first-name Ana --password pw12345
//	moneyballctl standings --league AL
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/moneyball/internal/config"
	"github.com/albapepper/moneyball/internal/db"
	"github.com/albapepper/moneyball/internal/mlb"
	"github.com/albapepper/moneyball/internal/store/postgres"
	"github.com/albapepper/moneyball/internal/user"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "moneyballctl",
		Short: "Moneyball admin CLI",
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(createUserCmd())
	root.AddCommand(standingsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			start := time.Now()
			if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
				return err
			}
			logger.Info("Schema applied", "duration", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// create-user command
// --------------------------------------------------------------------------

func createUserCmd() *cobra.Command {
	var email, firstName, password string
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register an account directly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				users := user.NewService(postgres.New(pool), user.NewBcryptHasher(cfg.BcryptCost))
				pub, err := users.Register(ctx, email, password, firstName)
				if err != nil {
					return err
				}
				logger.Info("User created", "email", pub.Email, "first_name", pub.FirstName)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&firstName, "first-name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("password")
	return cmd
}

// --------------------------------------------------------------------------
// standings command — smoke check against the MLB Stats API
// --------------------------------------------------------------------------

func standingsCmd() *cobra.Command {
	var league string
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print league standings from the MLB Stats API",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, ok := config.LeagueRegistry[league]
			if !ok {
				return fmt.Errorf("unknown league %q (use AL or NL)", league)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				// Standings need no database; fall back to client defaults.
				cfg = &config.Config{
					MLBAPIBaseURL:        "https://statsapi.mlb.com/api/v1",
					MLBRequestsPerMinute: 240,
				}
			}

			client := mlb.NewClient(cfg.MLBAPIBaseURL, cfg.MLBRequestsPerMinute, logger)
			records, err := client.Standings(ctx, lg.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s standings:\n", lg.Name)
			for i, rec := range mlb.LeagueTable(records) {
				fmt.Printf("%2d. %-25s %3d-%3d  %s\n",
					i+1, rec.Team.Name, rec.Wins, rec.Losses, rec.WinningPercentage)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&league, "league", "AL", "League (AL or NL)")
	return cmd
}

// --------------------------------------------------------------------------
// helpers
// --------------------------------------------------------------------------

func withPool(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
