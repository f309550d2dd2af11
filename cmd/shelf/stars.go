// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/shelfmark/internal/rating"
)

func newStarsCmd(global *globalOptions) *cobra.Command {
	var slots bool

	cmd := &cobra.Command{
		Use:   "stars RATING",
		Short: "Render a rating as stars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("rating must be a number: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, rating.Glyphs(r, global.glyphs()))

			if slots {
				rendered := rating.Render(r)
				names := make([]string, len(rendered))
				for i, slot := range rendered {
					names[i] = slot.String()
				}
				fmt.Fprintln(out, strings.Join(names, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&slots, "slots", false, "also print the ten half-star slots")
	return cmd
}
