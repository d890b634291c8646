package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString is a string that also accepts JSON numbers.
// The index stores ids as keywords, but older documents carry them as numbers.
type FlexString string

// UnmarshalJSON accepts "123", 123 and null
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("flex string: unsupported value %s", string(data))
	}
	*s = FlexString(num.String())
	return nil
}

// String returns the plain string value
func (s FlexString) String() string {
	return string(s)
}

// Creator is the owner of a game.
type Creator struct {
	ID               FlexString `json:"id,omitempty"`
	Name             string     `json:"name,omitempty"`
	Type             string     `json:"type,omitempty"`
	HasVerifiedBadge *bool      `json:"hasVerifiedBadge,omitempty"`
}

// UnmarshalJSON accepts either the creator object or a bare creator name
func (c *Creator) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = Creator{Name: name}
		return nil
	}

	type plain Creator
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Creator(p)
	return nil
}

// GameSource is the `_source` document stored in the search index.
type GameSource struct {
	ID             FlexString `json:"id"`
	RootPlaceID    FlexString `json:"rootPlaceId"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	Creator        *Creator   `json:"creator"`
	ImageURL       *string    `json:"imageUrl"`
	Playing        *int64     `json:"playing"`
	Visits         *int64     `json:"visits"`
	MaxPlayers     *int       `json:"maxPlayers"`
	Created        *string    `json:"created"`
	Updated        *string    `json:"updated"`
	Genre          *string    `json:"genre"`
	GenreL1        *string    `json:"genre_l1"`
	GenreL2        *string    `json:"genre_l2"`
	FavoritedCount *int64     `json:"favoritedCount"`
	Price          *float64   `json:"price"`
}

// Game is a search hit shaped for clients.
// Optional fields stay nil when the index document does not carry them.
type Game struct {
	ID             string   `json:"id"`
	RootPlaceID    string   `json:"rootPlaceId,omitempty"`
	Name           string   `json:"name"`
	FormattedName  string   `json:"formattedName"`
	Description    *string  `json:"description,omitempty"`
	Creator        *Creator `json:"creator,omitempty"`
	ImageURL       *string  `json:"imageUrl,omitempty"`
	PlayingCount   *int64   `json:"playingCount,omitempty"`
	VisitCount     *int64   `json:"visitCount,omitempty"`
	MaxPlayers     *int     `json:"maxPlayers,omitempty"`
	CreatedAt      *string  `json:"createdAt,omitempty"`
	UpdatedAt      *string  `json:"updatedAt,omitempty"`
	Category       *string  `json:"category,omitempty"`
	SubCategory1   *string  `json:"subCategory1,omitempty"`
	SubCategory2   *string  `json:"subCategory2,omitempty"`
	FavoritedCount *int64   `json:"favoritedCount,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	ThumbnailURL   string   `json:"thumbnailUrl"`
}

// Highlight holds the backend's emphasised fragments for a hit.
type Highlight struct {
	Name        []string `json:"name,omitempty"`
	Description []string `json:"description,omitempty"`
}

// RawHit is one entry of the backend hit list.
type RawHit struct {
	Source    json.RawMessage `json:"_source"`
	Highlight *Highlight      `json:"highlight,omitempty"`
}

// FormatCount renders player and visit counters for terminal output
func FormatCount(n *int64) string {
	if n == nil {
		return "-"
	}
	v := *n
	switch {
	case v >= 1_000_000_000:
		return strconv.FormatFloat(float64(v)/1e9, 'f', 1, 64) + "B"
	case v >= 1_000_000:
		return strconv.FormatFloat(float64(v)/1e6, 'f', 1, 64) + "M"
	case v >= 1_000:
		return strconv.FormatFloat(float64(v)/1e3, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(v, 10)
	}
}
