package main

import (
	"context"
	"errors"
	"io/fs"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/app"
	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title Library Circulation API
// @version 1.0
// @description Checkout, return and reservation of library copies.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel   string
		port       string
		loanPeriod time.Duration
		kafkaAddrs []string
		printCfg   bool
	)
	options := func(cmd *cobra.Command) ([]config.Option, error) {
		var ops []config.Option
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			level, err := zapcore.ParseLevel(logLevel)
			if err != nil {
				return nil, err
			}
			ops = append(ops, config.WithLogLevel(level))
		}
		if flags.Changed("port") {
			ops = append(ops, config.WithPort(port))
		}
		if flags.Changed("loan-period") {
			ops = append(ops, config.WithLoanPeriod(loanPeriod))
		}
		if flags.Changed("kafka") {
			ops = append(ops, config.WithKafka(kafkaAddrs...))
		}
		return ops, nil
	}

	root := &cobra.Command{
		Use:          "circulation",
		Short:        "Library circulation and reservation coordinator",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&loanPeriod, "loan-period", 30*24*time.Hour, "loan period")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops, err := options(cmd)
			if err != nil {
				return err
			}
			cfg := config.NewConfig(append(ops, config.WithWriteTimeout(time.Minute))...)
			if printCfg {
				config.PrintConfig(cfg)
			}
			return app.Run(cfg)
		},
	}
	serve.Flags().StringVar(&port, "port", "8080", "http port")
	serve.Flags().StringSliceVar(&kafkaAddrs, "kafka", nil, "kafka brokers, enables kafka publishing and the book drop consumer")
	serve.Flags().BoolVar(&printCfg, "print-config", false, "print the resolved config")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Run a checkout, reserve and return walkthrough in memory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops, err := options(cmd)
			if err != nil {
				return err
			}
			cfg := config.NewConfig(ops...)
			cfg.Kafka.Enabled = false
			log := logger.NewLogger(cfg.Log, "circulation")
			defer log.Sync() //nolint:errcheck

			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck
			a.Start(cmd.Context())
			return a.Demo(cmd.Context(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(serve, demo)
	return root
}
