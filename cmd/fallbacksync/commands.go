package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bilgisen/uknews/internal/config"
	"github.com/bilgisen/uknews/internal/fallback"
	"github.com/bilgisen/uknews/internal/logger"
)

var (
	bucket  string
	key     string
	timeout time.Duration
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fallbacksync",
	Short: "Manage the fallback content snapshot",
	Long: `fallbacksync moves the fallback tables between this binary and the R2 bucket.

Example usage:
  fallbacksync publish --key fallback/snapshot.json
  fallbacksync show --key fallback/snapshot.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.FromEnv()
		if err != nil {
			return err
		}
		logger.Init(logger.Config{Level: cfg.LogLevel, Output: "stderr", Pretty: cfg.LogPretty})
		if bucket == "" {
			bucket = cfg.R2Bucket
		}
		if key == "" {
			key = cfg.FallbackObjectKey
		}
		if key == "" {
			return fmt.Errorf("no object key: pass --key or set FALLBACK_OBJECT_KEY")
		}
		return nil
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the built-in snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		client, err := fallback.NewR2Client(ctx, cfg)
		if err != nil {
			return err
		}
		p := fallback.New()
		if err := fallback.PublishSnapshot(ctx, client, bucket, key, p); err != nil {
			return err
		}
		log.Info().Str("bucket", bucket).Str("key", key).Int("articles", len(p.Articles())).Msg("Snapshot published")
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Download, validate and print the published snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		client, err := fallback.NewR2Client(ctx, cfg)
		if err != nil {
			return err
		}
		p, err := fallback.LoadSnapshot(ctx, client, bucket, key)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p.Snapshot())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&bucket, "bucket", "", "R2 bucket (default R2_BUCKET)")
	rootCmd.PersistentFlags().StringVar(&key, "key", "", "object key (default FALLBACK_OBJECT_KEY)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	rootCmd.AddCommand(publishCmd, showCmd)
}
