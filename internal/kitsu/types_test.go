package kitsu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesMapping(t *testing.T) {
	t.Run("numeric value stringifies without decimals", func(t *testing.T) {
		var attrs Attributes
		require.NoError(t, json.Unmarshal([]byte(`{"mappings":{"myanimelist/anime":52991}}`), &attrs))

		assert.Equal(t, "52991", attrs.Mapping(MappingMAL))
	})

	t.Run("string value passes through", func(t *testing.T) {
		attrs := Attributes{Mappings: map[string]any{MappingMAL: "52991"}}
		assert.Equal(t, "52991", attrs.Mapping(MappingMAL))
	})

	t.Run("missing key yields empty string", func(t *testing.T) {
		attrs := Attributes{}
		assert.Equal(t, "", attrs.Mapping(MappingMAL))
	})
}

func TestImageSetURL(t *testing.T) {
	set := &ImageSet{
		Tiny:  "http://x/tiny.jpg",
		Large: "http://x/large.jpg",
	}

	assert.Equal(t, "http://x/tiny.jpg", set.URL("tiny"))
	assert.Equal(t, "http://x/large.jpg", set.URL("large"))
	assert.Equal(t, "", set.URL("medium"))
	assert.Equal(t, "", set.URL("bogus"))

	var nilSet *ImageSet
	assert.Equal(t, "", nilSet.URL("original"))
}

func TestImageSetSize(t *testing.T) {
	set := &ImageSet{
		Meta: ImageSetMeta{
			Dimensions: map[string]Dimensions{
				"medium": {Width: 390, Height: 554},
			},
		},
	}

	assert.Equal(t, Dimensions{Width: 390, Height: 554}, set.Size("medium"))
	assert.Equal(t, Dimensions{}, set.Size("tiny"))

	var nilSet *ImageSet
	assert.Equal(t, Dimensions{}, nilSet.Size("medium"))
}

func TestDocumentDecode(t *testing.T) {
	body := `{
		"data": [{
			"id": "42",
			"type": "anime",
			"attributes": {
				"titles": {"en": "Show A", "en_jp": "Shou A"},
				"startDate": "2024-04-01T00:00:00Z",
				"episodeCount": null,
				"subtype": "TV",
				"season": "spring",
				"posterImage": {
					"medium": "http://x/img.jpg",
					"meta": {"dimensions": {"medium": {"width": 390, "height": 554}}}
				}
			}
		}],
		"links": {"next": "http://x/anime?page[offset]=20"}
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(body), &doc))

	require.Len(t, doc.Data, 1)
	res := doc.Data[0]
	assert.Equal(t, "42", res.ID)
	assert.Equal(t, "Show A", res.Attributes.Titles.En)
	assert.Nil(t, res.Attributes.EpisodeCount)
	assert.Equal(t, "http://x/img.jpg", res.Attributes.PosterImage.URL("medium"))
	assert.Equal(t, 554, res.Attributes.PosterImage.Size("medium").Height)
	assert.Equal(t, "http://x/anime?page[offset]=20", doc.Links.Next)
}
