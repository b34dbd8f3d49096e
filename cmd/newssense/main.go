package main

import (
	"fmt"
	"log"
	"log/slog"

	"newssense/internal/config"
	"newssense/internal/logging"
	"newssense/internal/paths"
	"newssense/internal/query"
	"newssense/internal/setup"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	root := &cobra.Command{
		Use:          "newssense",
		Short:        "Workspace bootstrap for the NewsSense analysis pipeline",
		SilenceUsage: true,
	}
	root.AddCommand(
		newSetupCmd(cfg, logger),
		newVerifyCmd(cfg, logger),
		newHistoryCmd(cfg, logger),
	)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newSetupCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the workspace directory structure",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := paths.New(cfg, logger)
			if err != nil {
				return err
			}
			if err := ws.FixPathIssues(); err != nil {
				return err
			}
			inst := setup.NewInstaller(cfg.Root, logger)
			if err := inst.CreateStructure(); err != nil {
				return err
			}
			return inst.WriteEnvExample()
		},
	}
}

func newVerifyCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the workspace directories are writable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup.NewInstaller(cfg.Root, logger).VerifyAccess(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "workspace ok")
			return nil
		},
	}
}

func newHistoryCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent query records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := paths.New(cfg, logger)
			if err != nil {
				return err
			}
			store, err := query.NewStore(ws)
			if err != nil {
				return err
			}
			recs, err := store.Recent(cfg.HistoryLimit)
			if err != nil {
				return err
			}
			for _, r := range recs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID, r.Query)
			}
			return nil
		},
	}
}
