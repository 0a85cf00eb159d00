package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covera/internal/platform/config"
	"covera/internal/platform/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "covera",
		Short: "Covera - in-memory policyholder and claims registry with risk reports",
		Long: `Covera keeps policyholders and their insurance claims in memory and serves
claim histories, high-risk flags, and grouped claim aggregates over HTTP.

Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (COVERA_*)
  3. Config file (--config)
  4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			level, _ := config.ParseLevel(cfg.LogLevel)
			log := logger.New(level, cfg.LogFormat)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, log)
		},
	}
	serve.Flags().String("addr", "", "listen address (overrides COVERA_ADDR)")
	serve.Flags().Bool("strict", false, "reject negative values and claims against unknown policyholders")
	_ = v.BindPFlag("addr", serve.Flags().Lookup("addr"))
	_ = v.BindPFlag("strict_mode", serve.Flags().Lookup("strict"))

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "covera", version)
		},
	}

	root.AddCommand(serve, versionCmd)
	return root
}
