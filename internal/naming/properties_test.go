package naming

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestProperties(t *testing.T) {
	want := []Property{
		{Key: KeySeason},
		{Key: KeyEpisode},
		{Key: KeyYear},
		{Key: KeyScreenSize, Values: []string{"720p", "1080p", "2160p"}},
		{Key: KeyVideoCodec, Values: []string{"H.264", "H.265", "XviD"}},
		{Key: KeySource, Values: []string{"BluRay", "HDTV", "WEB"}},
		{Key: KeyContainer},
	}
	if diff := cmp.Diff(want, Properties()); diff != "" {
		t.Errorf("Properties() mismatch (-want +got):\n%s", diff)
	}
}

func TestPropertiesMatchRecordOrder(t *testing.T) {
	r := Guess("Show.S01E02.2010.1080p.BluRay.x264.mkv")
	var keys []string
	for _, p := range Properties() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, r.Keys(), keys)
}

func TestIsProperty(t *testing.T) {
	assert.True(t, IsProperty("screen_size"))
	assert.True(t, IsProperty("container"))
	assert.False(t, IsProperty("title"))
	assert.False(t, IsProperty(""))
}
