package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the seeded catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.OutOrStdout(), opts, sortKey)
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "", "sort by title or price")
	return cmd
}

func runList(w io.Writer, opts *options, sortKey string) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	lib, err := buildLibrary(cfg)
	if err != nil {
		return err
	}

	if sortKey != "" {
		if err := lib.SortBy(sortKey); err != nil {
			return err
		}
	}

	for e := range lib.ListAll() {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Products: %d\nGenres: %d\n", lib.Count(), lib.GenreCount())
	return err
}
