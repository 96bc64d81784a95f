// Package simulcast defines the season export schema and the mapping from
// raw catalog records into it.
package simulcast

import "encoding/json"

// Image describes one downloaded artwork variant
type Image struct {
	Height    int    `json:"height"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Width     int    `json:"width"`
	LocalPath string `json:"localPath"`
}

// EpisodeCount is the episode total of a series when the catalog knows it.
// Downstream consumers expect the literal string "None" for an unknown
// count rather than a JSON null, so marshaling preserves that sentinel.
type EpisodeCount struct {
	Count int
	Known bool
}

// Episodes returns a known episode count.
func Episodes(n int) EpisodeCount {
	return EpisodeCount{Count: n, Known: true}
}

// MarshalJSON writes the count, or the "None" sentinel when unknown.
func (e EpisodeCount) MarshalJSON() ([]byte, error) {
	if !e.Known {
		return json.Marshal("None")
	}
	return json.Marshal(e.Count)
}

// UnmarshalJSON accepts either the numeric count or the "None" sentinel.
func (e *EpisodeCount) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*e = Episodes(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*e = EpisodeCount{}
	return nil
}

// Anime is one normalized record of the season export
type Anime struct {
	ID           string       `json:"id"`
	SeriesID     string       `json:"seriesID"`
	TitleEnglish string       `json:"titleEnglish"`
	TitleRomaji  string       `json:"titleRomaji"`
	DateStart    *string      `json:"dateStart"`
	EpisodeCount EpisodeCount `json:"episodeCount"`
	Format       string       `json:"format"`
	IDKitsu      string       `json:"idKitsu"`
	IDMAL        string       `json:"idMAL"`
	Season       string       `json:"season"`
	KeyVisuals   []Image      `json:"keyVisuals"`
	CoverImages  []Image      `json:"coverImages"`
}

// Batch is the aggregated result of one season export run
type Batch struct {
	Anime []Anime `json:"anime"`
	ID    string  `json:"id"`
	Start *Anime  `json:"start"`
}
