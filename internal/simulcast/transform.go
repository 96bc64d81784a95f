package simulcast

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aniplanner/simulcast/internal/kitsu"
)

// ArtworkFetcher downloads one artwork URL into a directory, returning the
// written file's path. An empty path with a nil error means the image was
// unavailable and the variant should be skipped; a non-nil error aborts
// the run.
type ArtworkFetcher interface {
	Fetch(ctx context.Context, url, dir string) (string, error)
}

// Variant sets iterated per image group. Cover images carry no medium
// variant; the upstream catalog never serves one.
var (
	posterSizes = []string{"tiny", "small", "medium", "large", "original"}
	coverSizes  = []string{"tiny", "small", "large", "original"}
)

// Transform maps one raw catalog resource into an export record,
// downloading its artwork into imagesDir. Variants whose URL is absent or
// whose download is refused are omitted from the descriptor lists.
func Transform(ctx context.Context, res kitsu.Resource, art ArtworkFetcher, imagesDir string) (Anime, error) {
	attrs := res.Attributes

	dateStart, err := formatDate(attrs.StartDate)
	if err != nil {
		return Anime{}, fmt.Errorf("record %s: %w", res.ID, err)
	}

	episodeCount := EpisodeCount{}
	if attrs.EpisodeCount != nil {
		episodeCount = Episodes(*attrs.EpisodeCount)
	}

	keyVisuals, err := collectImages(ctx, attrs.PosterImage, "poster", posterSizes, art, imagesDir)
	if err != nil {
		return Anime{}, fmt.Errorf("record %s: %w", res.ID, err)
	}
	coverImages, err := collectImages(ctx, attrs.CoverImage, "cover", coverSizes, art, imagesDir)
	if err != nil {
		return Anime{}, fmt.Errorf("record %s: %w", res.ID, err)
	}

	return Anime{
		ID:           res.ID,
		SeriesID:     res.ID,
		TitleEnglish: attrs.Titles.En,
		TitleRomaji:  attrs.Titles.EnJp,
		DateStart:    dateStart,
		EpisodeCount: episodeCount,
		Format:       attrs.Subtype,
		IDKitsu:      res.ID,
		IDMAL:        attrs.Mapping(kitsu.MappingMAL),
		Season:       capitalize(attrs.Season),
		KeyVisuals:   keyVisuals,
		CoverImages:  coverImages,
	}, nil
}

// collectImages walks the size variants of one image group in a fixed
// order, downloading each and recording a descriptor for every success.
func collectImages(ctx context.Context, set *kitsu.ImageSet, prefix string, sizes []string, art ArtworkFetcher, dir string) ([]Image, error) {
	images := []Image{}
	for _, size := range sizes {
		url := set.URL(size)
		if url == "" {
			continue
		}

		localPath, err := art.Fetch(ctx, url, dir)
		if err != nil {
			return nil, fmt.Errorf("download %s_%s: %w", prefix, size, err)
		}
		if localPath == "" {
			continue
		}

		dim := set.Size(size)
		images = append(images, Image{
			Height:    dim.Height,
			Name:      fmt.Sprintf("%s_%s", prefix, size),
			URL:       url,
			Width:     dim.Width,
			LocalPath: localPath,
		})
	}
	return images, nil
}

// formatDate normalizes a catalog timestamp ("2024-04-01T00:00:00Z") into a
// plain YYYY-MM-DD string. An absent date yields nil.
func formatDate(s string) (*string, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Some records carry a bare date already.
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", s, err)
		}
	}
	formatted := t.Format("2006-01-02")
	return &formatted, nil
}

// capitalize uppercases the first letter of a season name.
func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
