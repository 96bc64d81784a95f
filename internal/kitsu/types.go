package kitsu

import (
	"fmt"
	"strconv"
)

// Document is one page of a JSON:API response
type Document struct {
	Data  []Resource `json:"data"`
	Links Links      `json:"links"`
}

// Links holds the pagination links of a page. Next is empty on the last page.
type Links struct {
	First string `json:"first"`
	Next  string `json:"next"`
	Last  string `json:"last"`
}

// Resource is a single anime record as returned by the catalog
type Resource struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Attributes Attributes `json:"attributes"`
}

// Attributes holds the nested attribute map of a resource
type Attributes struct {
	Titles       Titles         `json:"titles"`
	StartDate    string         `json:"startDate"`
	EpisodeCount *int           `json:"episodeCount"`
	Subtype      string         `json:"subtype"`
	Mappings     map[string]any `json:"mappings"`
	Season       string         `json:"season"`
	PosterImage  *ImageSet      `json:"posterImage"`
	CoverImage   *ImageSet      `json:"coverImage"`
}

// Titles holds the localized titles of a record
type Titles struct {
	En   string `json:"en"`
	EnJp string `json:"en_jp"`
	JaJp string `json:"ja_jp"`
}

// ImageSet is a group of size variants of one artwork image
type ImageSet struct {
	Tiny     string       `json:"tiny"`
	Small    string       `json:"small"`
	Medium   string       `json:"medium"`
	Large    string       `json:"large"`
	Original string       `json:"original"`
	Meta     ImageSetMeta `json:"meta"`
}

// ImageSetMeta carries per-size dimension metadata
type ImageSetMeta struct {
	Dimensions map[string]Dimensions `json:"dimensions"`
}

// Dimensions of one size variant. Zero when the catalog reports none.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// URL returns the variant URL for the given size name, or "" when the size
// is not present.
func (s *ImageSet) URL(size string) string {
	if s == nil {
		return ""
	}
	switch size {
	case "tiny":
		return s.Tiny
	case "small":
		return s.Small
	case "medium":
		return s.Medium
	case "large":
		return s.Large
	case "original":
		return s.Original
	}
	return ""
}

// Size returns the dimensions recorded for the given size name.
func (s *ImageSet) Size(size string) Dimensions {
	if s == nil {
		return Dimensions{}
	}
	return s.Meta.Dimensions[size]
}

// Mapping returns the external catalog identifier under the given key as a
// string. The catalog serves some mapping values as numbers and some as
// strings; both stringify the same way. Missing keys yield "".
func (a Attributes) Mapping(key string) string {
	v, ok := a.Mappings[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
