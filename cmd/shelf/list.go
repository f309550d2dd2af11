// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/rating"
)

type listOptions struct {
	mediaType string
	tags      []string
	minRating float64
	year      string
	sort      string
	dir       string
}

func newListCmd(global *globalOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items with filters and sorting",
		Long: `List catalog items.

Filters combine with AND:
  --tag        any of the given tags (repeatable or comma-separated)
  --min-rating rating at or above the threshold (0 disables)
  --year       a year ("2010") or range ("2010-2015"); ranges match by overlap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := global.loadCatalog()
			if err != nil {
				return err
			}

			config, err := opts.listing()
			if err != nil {
				return err
			}

			if opts.mediaType != "" {
				t, err := media.ParseType(opts.mediaType)
				if err != nil {
					return err
				}
				items = media.ByType(items, t)
			}

			return global.writeItems(cmd.OutOrStdout(), media.Derive(items, config))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.mediaType, "type", "t", "", "movies, tv-shows or books")
	flags.StringSliceVar(&opts.tags, "tag", nil, "tag to match (repeatable)")
	flags.Float64Var(&opts.minRating, "min-rating", 0, "minimum rating, 0 to 5")
	flags.StringVar(&opts.year, "year", "", "year or year range")
	flags.StringVar(&opts.sort, "sort", "", "title, year, rating or dateAdded")
	flags.StringVar(&opts.dir, "dir", "", "asc or desc")
	return cmd
}

func (opts *listOptions) listing() (media.ListingConfig, error) {
	if opts.minRating < 0 || opts.minRating > rating.MaxStars {
		return media.ListingConfig{}, fmt.Errorf("--min-rating must be between 0 and %d", rating.MaxStars)
	}

	sortConfig, err := media.ParseSort(opts.sort, opts.dir)
	if err != nil {
		return media.ListingConfig{}, err
	}

	return media.ListingConfig{
		Filter: media.NewFilter(opts.tags, opts.minRating, opts.year),
		Sort:   sortConfig,
	}, nil
}

func newTagsCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags with their item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := global.loadCatalog()
			if err != nil {
				return err
			}

			for _, tag := range media.Tags(items) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d\n", tag.Name, tag.MediaCount)
			}
			return nil
		},
	}
}
