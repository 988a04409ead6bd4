package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/faithss/website/internal/config"
	"github.com/faithss/website/internal/db"
	"github.com/faithss/website/internal/directory"
	"github.com/faithss/website/internal/fixtures"
	"github.com/faithss/website/internal/notify"
	"github.com/faithss/website/internal/results"
	svc "github.com/faithss/website/internal/services"
	"github.com/faithss/website/internal/web"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "faithss",
		Short:         "Faith Secondary School website",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), seedCmd(), lookupCmd())
	return root
}

func loadFixtures(cfg *config.Config) (*fixtures.Set, error) {
	if cfg.FixturesDir != "" {
		return fixtures.LoadDir(cfg.FixturesDir)
	}
	return fixtures.Load()
}

// setup loads config and fixtures and opens the database.
func setup() (*config.Config, *fixtures.Set, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	set, err := loadFixtures(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("fixtures: %w", err)
	}
	if err := db.Init(cfg.DSN, set); err != nil {
		return nil, nil, fmt.Errorf("db init: %w", err)
	}
	return cfg, set, nil
}

func newDesk(cfg *config.Config) (*results.Desk, error) {
	policy, err := directory.NewPolicy(cfg.AdmissionPattern, cfg.TermOrder)
	if err != nil {
		return nil, err
	}
	return results.NewDesk(svc.ResultSource, policy, cfg.LookupDelay), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}
			desk, err := newDesk(cfg)
			if err != nil {
				return err
			}

			var n notify.Notifier = notify.Log{Logger: log.Default()}
			if cfg.Telegram.Enabled() {
				n = notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
				log.Printf("contact messages forwarded to telegram chat %d", cfg.Telegram.ChatID)
			}

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           web.Router(web.Deps{Config: cfg, Desk: desk, Notifier: n}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				log.Printf("%s listening on %s", cfg.SchoolName, cfg.Addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			log.Printf("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load staff and result fixtures into the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, set, err := setup()
			if err != nil {
				return err
			}
			if reset {
				if err := db.Reseed(db.Conn(), set); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "staff: %d, results: %d\n", len(set.Staff), len(set.Results))
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "replace existing rows with the fixtures")
	return cmd
}

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <admission-id> <pin>",
		Short: "Look up a result the way the results page does",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}
			desk, err := newDesk(cfg)
			if err != nil {
				return err
			}
			res, err := desk.Find(cmd.Context(), args[0], args[1])
			if err != nil {
				if directory.Rejected(err) {
					return errors.New(directory.Notice(err))
				}
				return fmt.Errorf("lookup %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s) %s, %s %s\n", res.Name, res.AdmissionID, res.Class, res.Term, res.Session)
			for _, s := range res.Subjects {
				fmt.Fprintf(out, "  %-24s %3d  %s\n", s.Name, s.Score, s.Grade)
			}
			fmt.Fprintf(out, "Overall: %d%% %s, position %s\n", res.OverallScore, res.OverallGrade, res.Position)
			if c := strings.TrimSpace(res.Comments); c != "" {
				fmt.Fprintf(out, "Comments: %s\n", c)
			}
			return nil
		},
	}
}
