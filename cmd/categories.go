package cmd

import (
	"github.com/spf13/cobra"
)

var (
	categoriesLimit  int
	categoriesAsJSON bool
)

// categoriesCmd lists the most populated categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the top game categories",
	Long: `Fetch the index aggregations, merge the genre levels case-insensitively
and print the largest categories.

Example:
  rofind categories
  rofind categories --limit 20 --json`,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().IntVarP(&categoriesLimit, "limit", "n", 0, "number of categories (default from config)")
	categoriesCmd.Flags().BoolVar(&categoriesAsJSON, "json", false, "print the categories as JSON")
}

func runCategories(cmd *cobra.Command, _ []string) error {
	svc, _, err := loadServices()
	if err != nil {
		return err
	}

	categories, err := svc.facets.Categories(cmd.Context(), categoriesLimit)
	if err != nil {
		return err
	}

	if categoriesAsJSON {
		return writeJSON(cmd.OutOrStdout(), categories)
	}
	printCategories(cmd.OutOrStdout(), categories)
	return nil
}
