package main

import (
	"fmt"
	"io"
	"slices"
	"skillmatch/internal/analyzer"
	"skillmatch/pkg/catalog"

	"github.com/spf13/cobra"
)

func skillsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skills [PHRASE...]",
		Short: "Prints the skill catalog and synonym table, or looks up phrases in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				lookup(out, cat, args)

				return nil
			}

			fmt.Fprintf(out, "skills (%d):\n", cat.Len())
			for _, s := range cat.Skills() {
				fmt.Fprintf(out, "  %s\n", s)
			}

			synonyms := cat.Synonyms()
			alts := make([]string, 0, len(synonyms))
			for alt := range synonyms {
				alts = append(alts, alt)
			}
			slices.Sort(alts)

			fmt.Fprintf(out, "synonyms (%d):\n", len(alts))
			for _, alt := range alts {
				fmt.Fprintf(out, "  %s -> %s\n", alt, synonyms[alt])
			}

			return nil
		},
	}
}

func lookup(out io.Writer, cat *catalog.Catalog, phrases []string) {
	synonyms := cat.Synonyms()
	for _, p := range phrases {
		n := analyzer.Normalize(p)
		switch canonical, ok := synonyms[n]; {
		case cat.Has(n):
			fmt.Fprintf(out, "%s: skill\n", n)
		case ok:
			fmt.Fprintf(out, "%s -> %s\n", n, canonical)
		default:
			fmt.Fprintf(out, "%s: unknown\n", n)
		}
	}
}
