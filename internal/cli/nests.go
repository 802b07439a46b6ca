package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/egg-import/internal/egg"
)

// nestGroup is one nest with the game slugs mapped to it.
type nestGroup struct {
	Nest  string   `json:"nest"`
	Slugs []string `json:"slugs"`
}

func newNestsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "nests",
		Short: "Show which nest each game directory is imported into",
		Long: `Display the built-in mapping from game directory to nest.

The first directory below the repository root names the game. Games that
are not listed here are imported into "` + egg.DefaultNest + `".

Examples:
  egg-import nests
  egg-import nests --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := nestGroups()
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := json.MarshalIndent(groups, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal nests: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, g := range groups {
				fmt.Fprintf(out, "%s (%d)\n", g.Nest, len(g.Slugs))
				for _, slug := range g.Slugs {
					fmt.Fprintf(out, "  %s\n", slug)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// nestGroups returns every nest in name order, including nests with no
// mapped slugs.
func nestGroups() []nestGroup {
	bySlug := egg.SlugsByNest()
	names := egg.NestNames()
	groups := make([]nestGroup, 0, len(names))
	for _, name := range names {
		slugs := bySlug[name]
		if slugs == nil {
			slugs = []string{}
		}
		groups = append(groups, nestGroup{Nest: name, Slugs: slugs})
	}
	return groups
}
