// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/shelfmark/internal/platform/constants"
	"github.com/taibuivan/shelfmark/internal/platform/sec"
)

func newTokenCmd() *cobra.Command {
	var (
		keyPath  string
		username string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token REVIEWER_ID",
		Short: "Mint a reviewer token for local testing",
		Long: `Mint an RS256 bearer token accepted by the API's review-save route.

The API must be started with JWT_PUBLIC_KEY_PATH pointing at the public half
of --key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyPath == "" {
				return errors.New("--key is required")
			}

			signer, err := sec.NewSigner(keyPath, constants.AuthIssuer)
			if err != nil {
				return err
			}

			token, err := signer.GenerateAccessToken(args[0], username, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&keyPath, "key", "", "PEM-encoded RSA private key")
	flags.StringVar(&username, "username", "", "display name carried in the token")
	flags.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
