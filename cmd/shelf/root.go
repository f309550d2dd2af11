// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/rating"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	catalogPath string
	ascii       bool
	format      string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "shelf",
		Short:         "Browse a movie, TV and book catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case "table", "yaml":
				return nil
			}
			return fmt.Errorf("--format must be table or yaml, got %q", opts.format)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.catalogPath, "catalog", "", "YAML catalog file (default: built-in seed)")
	flags.BoolVar(&opts.ascii, "ascii", false, "draw stars with ASCII characters")
	flags.StringVar(&opts.format, "format", "table", "output format: table or yaml")

	root.AddCommand(
		newListCmd(opts),
		newTagsCmd(opts),
		newStarsCmd(opts),
		newSearchCmd(opts),
		newTokenCmd(),
	)
	return root
}

// loadCatalog returns the configured catalog.
func (opts *globalOptions) loadCatalog() ([]media.MediaItem, error) {
	if opts.catalogPath == "" {
		return media.SeedCatalog()
	}

	raw, err := os.ReadFile(opts.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return media.DecodeCatalog(raw)
}

func (opts *globalOptions) glyphs() rating.GlyphSet {
	if opts.ascii {
		return rating.ASCIIGlyphs
	}
	return rating.UnicodeGlyphs
}

// writeItems prints items as a table, or as a YAML catalog document that
// --catalog can read back.
func (opts *globalOptions) writeItems(out io.Writer, items []media.MediaItem) error {
	if opts.format == "yaml" {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		document := struct {
			Items []media.MediaItem `yaml:"items"`
		}{items}
		if err := encoder.Encode(document); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	}

	table := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "ID\tTYPE\tTITLE\tYEAR\tRATING\tTAGS")
	for _, item := range items {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s %.1f\t%v\n",
			item.ID, item.Type, item.Title, item.Year,
			rating.Glyphs(item.Rating, opts.glyphs()), item.Rating, item.Tags)
	}
	return table.Flush()
}
