package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/internal/services/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printSearchResult renders one page of results as a table followed by
// suggestions, the analysis and the pager
func printSearchResult(out io.Writer, query string, pageSize int, result *models.SearchResult) {
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Results for %q", query)))

	if len(result.Items) == 0 {
		fmt.Fprintln(out, metaStyle.Render("No games found."))
	} else {
		t := newTable("#", "Name", "Creator", "Playing", "Visits", "Genre")
		offset := max(result.CurrentPage-1, 0) * pageSize
		for i, g := range result.Items {
			creator := "-"
			if g.Creator != nil && g.Creator.Name != "" {
				creator = g.Creator.Name
			}
			genre := "-"
			if g.Category != nil && *g.Category != "" {
				genre = *g.Category
			}
			t.Row(strconv.Itoa(offset+i+1), g.Name, creator, models.FormatCount(g.PlayingCount), models.FormatCount(g.VisitCount), genre)
		}
		fmt.Fprintln(out, t.Render())
	}

	fmt.Fprintln(out, metaStyle.Render(fmt.Sprintf("%d games, page %d of %d", result.TotalCount, result.CurrentPage, max(result.TotalPages, 1))))
	if pager := renderPager(search.PageWindow(result.CurrentPage, result.TotalPages)); pager != "" {
		fmt.Fprintln(out, pager)
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(out, titleStyle.Render("Did you mean"))
		for _, s := range result.Suggestions {
			fmt.Fprintf(out, "  • %s\n", s)
		}
	}

	if a := result.Analysis; a != nil {
		fmt.Fprintln(out, titleStyle.Render("Analysis"))
		printAnalysis(out, a)
	}
}

func printAnalysis(out io.Writer, a *models.Analysis) {
	if a.Kind == models.AnalysisPlain {
		fmt.Fprintf(out, "  %s\n", a.Text)
		return
	}
	if a.TopPick != "" {
		fmt.Fprintf(out, "  Top pick: %s\n", a.TopPick)
	}
	for _, f := range a.Features {
		if f.IsPlain() {
			fmt.Fprintf(out, "  • %s\n", f.Text)
			continue
		}
		fmt.Fprintf(out, "  • %s: %s\n", f.Name, f.Description)
	}
	if a.Conclusion != "" {
		fmt.Fprintf(out, "  %s\n", a.Conclusion)
	}
}

func renderPager(markers []search.PageMarker) string {
	pager := ""
	for i, m := range markers {
		if i > 0 {
			pager += " "
		}
		switch {
		case m.Ellipsis:
			pager += "…"
		case m.Current:
			pager += titleStyle.Render("[" + strconv.Itoa(m.Page) + "]")
		default:
			pager += strconv.Itoa(m.Page)
		}
	}
	return pager
}

func printCategories(out io.Writer, categories []models.MergedBucket) {
	if len(categories) == 0 {
		fmt.Fprintln(out, metaStyle.Render("No categories found."))
		return
	}
	t := newTable("#", "Category", "Games")
	for i, c := range categories {
		t.Row(strconv.Itoa(i+1), c.Key, strconv.FormatInt(c.Count, 10))
	}
	fmt.Fprintln(out, t.Render())
}
