package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/internal/services/search"
)

type searchOptions struct {
	page       int
	enhance    bool
	genres     []string
	minPlaying int
	minPlayers int
	maxPlayers int
	asJSON     bool
}

var searchOpts searchOptions

// searchCmd runs a search against the configured backend
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for games from the command line",
	Long: `Run a search through the same pipeline the API uses and print one page of results.

An empty query with at least one filter browses the filtered index.

Example:
  rofind search "tower defense"
  rofind search obby --page 2 --genre Obby --min-playing 100
  rofind search "horror with friends" --enhance --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	f := searchCmd.Flags()
	f.IntVarP(&searchOpts.page, "page", "p", 1, "page number")
	f.BoolVar(&searchOpts.enhance, "enhance", false, "request query enhancement from the backend")
	f.StringSliceVarP(&searchOpts.genres, "genre", "g", nil, "genre filter (repeatable or comma separated)")
	f.IntVar(&searchOpts.minPlaying, "min-playing", 0, "minimum players currently playing")
	f.IntVar(&searchOpts.minPlayers, "min-players", 0, "minimum supported players")
	f.IntVar(&searchOpts.maxPlayers, "max-players", 0, "maximum supported players")
	f.BoolVar(&searchOpts.asJSON, "json", false, "print the result as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, cfg, err := loadServices()
	if err != nil {
		return err
	}

	params := searchOpts.params(strings.Join(args, " "))
	result := svc.orchestrator.Search(cmd.Context(), params)

	out := cmd.OutOrStdout()
	if searchOpts.asJSON {
		return writeJSON(out, result)
	}
	printSearchResult(out, params.Query, cfg.Search.PageSize, result)
	return nil
}

// params converts the flags into orchestrator parameters. Zero numeric flags mean unset.
func (o searchOptions) params(query string) search.Params {
	optional := func(v int) *int {
		if v <= 0 {
			return nil
		}
		return &v
	}

	return search.Params{
		Query:          strings.TrimSpace(query),
		Page:           o.page,
		UseEnhancement: o.enhance,
		Filters: models.FilterSet{
			Categories:       o.genres,
			MinActivePlayers: optional(o.minPlaying),
			MinCapacity:      optional(o.minPlayers),
			MaxCapacity:      optional(o.maxPlayers),
		},
	}
}
