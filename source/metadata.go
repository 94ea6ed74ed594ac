package source

import (
	"fmt"
	"strings"
)

// Metadata holds the canonical fields supplied by the metadata API.
type Metadata struct {
	ID       int      `json:"id"`
	URL      string   `json:"url"`
	Image    string   `json:"image"`
	Synopsis string   `json:"synopsis"`
	Genres   []string `json:"genres"`
	Status   string   `json:"status"`
	Duration string   `json:"duration"`
	// Score is nil when the API has no score for the entry.
	Score        *float64 `json:"score"`
	Type         string   `json:"type"`
	TitleEnglish string   `json:"titleEnglish"`
	Rating       string   `json:"rating"`
	Season       string   `json:"season"`
	Year         int      `json:"year"`
	Studios      []string `json:"studios"`
	Episodes     int      `json:"episodes"`
}

// Aired formats season and year, e.g. "Fall 2023".
func (m *Metadata) Aired() string {
	var parts []string

	if m.Season != "" {
		parts = append(parts, strings.ToUpper(m.Season[:1])+m.Season[1:])
	}

	if m.Year != 0 {
		parts = append(parts, fmt.Sprint(m.Year))
	}

	return strings.Join(parts, " ")
}

// ScoreString formats the score or returns "N/A".
func (m *Metadata) ScoreString() string {
	if m.Score == nil {
		return "N/A"
	}

	return fmt.Sprintf("%.2f", *m.Score)
}
