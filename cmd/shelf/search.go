// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/remote"
)

const remoteEnv = "SHELFMARK_REMOTE_URL"

func newSearchCmd(global *globalOptions) *cobra.Command {
	var (
		remoteURL string
		page      int
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "search TYPE QUERY",
		Short: "Search the remote metadata service",
		Long: `Search the remote metadata service.

TYPE is movies, tv-shows or books. The service URL comes from --remote or
the ` + remoteEnv + ` environment variable.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := media.ParseType(args[0])
			if err != nil {
				return err
			}

			if remoteURL == "" {
				remoteURL = os.Getenv(remoteEnv)
			}
			if remoteURL == "" {
				return errors.New("no remote service: pass --remote or set " + remoteEnv)
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			client, err := remote.NewClient(remoteURL, timeout, logger)
			if err != nil {
				return err
			}

			result, err := client.Search(cmd.Context(), t, args[1], page)
			if err != nil {
				return err
			}

			if err := global.writeItems(cmd.OutOrStdout(), result.Items); err != nil {
				return err
			}
			if global.format == "table" {
				fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d\n", result.Page, result.TotalPages)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&remoteURL, "remote", "", "base URL of the metadata service")
	flags.IntVar(&page, "page", 1, "result page, starting at 1")
	flags.DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}
