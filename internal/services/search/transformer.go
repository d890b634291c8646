package search

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/pkg/log"
)

const (
	// DefaultHighlightOpen and DefaultHighlightClose wrap matched terms in names and descriptions
	DefaultHighlightOpen  = `<span class="bg-yellow-500/30 text-white font-bold">`
	DefaultHighlightClose = `</span>`

	placeholderThumbnail = "/placeholder.svg?height=200&width=400&text="
)

var emphasisPattern = regexp.MustCompile(`(?s)<em>(.*?)</em>`)

// Transformer maps backend hits to games
type Transformer struct {
	replacement string
}

// NewTransformer creates a transformer. Empty markers fall back to the defaults.
func NewTransformer(open, close string) *Transformer {
	if open == "" && close == "" {
		open, close = DefaultHighlightOpen, DefaultHighlightClose
	}
	// Escape $ so markup cannot be read as a group reference
	open = strings.ReplaceAll(open, "$", "$$")
	close = strings.ReplaceAll(close, "$", "$$")

	return &Transformer{
		replacement: open + "${1}" + close,
	}
}

// Transform converts hits in order. Hits whose source cannot be decoded are skipped.
func (t *Transformer) Transform(ctx context.Context, hits []models.RawHit) []models.Game {
	games := make([]models.Game, 0, len(hits))
	for i, hit := range hits {
		var src models.GameSource
		if err := json.Unmarshal(hit.Source, &src); err != nil {
			l := log.Ctx(ctx)
			l.Warn().Err(err).Int("hit", i).Msg("skipping undecodable hit")
			continue
		}
		games = append(games, t.toGame(src, hit.Highlight))
	}
	return games
}

// Highlight replaces every <em>..</em> pair with the configured markup
func (t *Transformer) Highlight(s string) string {
	return emphasisPattern.ReplaceAllString(s, t.replacement)
}

func (t *Transformer) toGame(src models.GameSource, hl *models.Highlight) models.Game {
	displayName := src.Name
	if hl != nil && len(hl.Name) > 0 && hl.Name[0] != "" {
		displayName = hl.Name[0]
	}

	return models.Game{
		ID:             src.ID.String(),
		RootPlaceID:    src.RootPlaceID.String(),
		Name:           src.Name,
		FormattedName:  t.Highlight(displayName),
		Description:    src.Description,
		Creator:        src.Creator,
		ImageURL:       src.ImageURL,
		PlayingCount:   src.Playing,
		VisitCount:     src.Visits,
		MaxPlayers:     src.MaxPlayers,
		CreatedAt:      src.Created,
		UpdatedAt:      src.Updated,
		Category:       src.Genre,
		SubCategory1:   src.GenreL1,
		SubCategory2:   src.GenreL2,
		FavoritedCount: src.FavoritedCount,
		Price:          src.Price,
		ThumbnailURL:   thumbnailURL(src),
	}
}

func thumbnailURL(src models.GameSource) string {
	if src.ImageURL != nil && *src.ImageURL != "" {
		return *src.ImageURL
	}
	return placeholderThumbnail + encodeURIComponent(src.Name)
}

// uriComponentFixups undoes the QueryEscape differences from encodeURIComponent
var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return uriComponentFixups.Replace(url.QueryEscape(s))
}
