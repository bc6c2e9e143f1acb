package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dosada05/esports-registry/config"
	"github.com/Dosada05/esports-registry/server"
)

var exportSnapshotCmd = &cobra.Command{
	Use:   "export-snapshot",
	Short: "Upload the current dashboard data to object storage and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		ctx := cmd.Context()

		uploader, err := newUploader(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if uploader == nil {
			return errors.New("snapshot storage is not configured, set the R2_* variables")
		}

		conn, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer conn.Close()

		srv := server.New(server.Options{DB: conn, Logger: logger, Uploader: uploader})
		result, err := srv.Snapshots.Export(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "key: %s\nurl: %s\n", result.Key, result.Location)
		return nil
	},
}
