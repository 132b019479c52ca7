// Package cmd implements the rikuso command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyakuten55/rikuso-demo/app"
	"github.com/gyakuten55/rikuso-demo/config"
	"github.com/gyakuten55/rikuso-demo/core/snapshot"
	"github.com/gyakuten55/rikuso-demo/infra/logger"
)

var (
	cfgPath  string
	snapPath string
	dateStr  string
)

var rootCmd = &cobra.Command{
	Use:   "rikuso",
	Short: "Fleet allocation and vacation policy service",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVarP(&snapPath, "snapshot", "s", "snapshot.json", "fleet snapshot file")
	rootCmd.PersistentFlags().StringVarP(&dateStr, "date", "d", "", "target date (YYYY-MM-DD, default today)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}

func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newService() (*app.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}

func loadSnapshot() (snapshot.Snapshot, error) {
	snap, err := snapshot.LoadFile(snapPath)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

func targetDate() (time.Time, error) {
	if dateStr == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return d, nil
}
