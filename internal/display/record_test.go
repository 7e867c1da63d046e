package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/guessit/internal/config"
	"github.com/backmassage/guessit/internal/naming"
	"github.com/backmassage/guessit/internal/term"
)

func TestWriteRecord(t *testing.T) {
	term.Configure(config.ColorNever, nil)
	r := naming.Guess("Show.Name.S01E02.1080p.BluRay.x264.mkv")

	tests := []struct {
		name   string
		format config.Format
		want   string
	}{
		{
			"json", config.FormatJSON,
			`{"season":1,"episode":2,"screen_size":"1080p","video_codec":"H.264","source":"BluRay","container":"mkv"}` + "\n",
		},
		{
			"yaml", config.FormatYAML,
			"season: 1\nepisode: 2\nscreen_size: 1080p\nvideo_codec: H.264\nsource: BluRay\ncontainer: mkv\n",
		},
		{
			"text", config.FormatText,
			"season:      1\n" +
				"episode:     2\n" +
				"screen_size: 1080p\n" +
				"video_codec: H.264\n" +
				"source:      BluRay\n" +
				"container:   mkv\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteRecord(&buf, r, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteRecordEmpty(t *testing.T) {
	term.Configure(config.ColorNever, nil)
	empty := naming.Guess("")

	tests := []struct {
		format config.Format
		want   string
	}{
		{config.FormatJSON, "{}\n"},
		{config.FormatYAML, "{}\n"},
		{config.FormatText, EmptyText + "\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteRecord(&buf, empty, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteRecordUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteRecord(&buf, naming.Record{}, "xml"))
}

func TestFormatRecordColor(t *testing.T) {
	term.Configure(config.ColorAlways, nil)
	t.Cleanup(func() { term.Configure(config.ColorNever, nil) })

	out := FormatRecord(naming.Guess("clip.mkv"))
	assert.Equal(t, term.Cyan+"container:"+term.NC+" mkv\n", out)
}

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever, nil)
	var buf bytes.Buffer
	PrintBanner(&buf, term.Colors{})
	assert.Contains(t, buf.String(), "GuessIt 1.0.0")
}

func TestPrintBannerColors(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, term.For(config.ColorAlways, nil))
	assert.True(t, strings.HasPrefix(buf.String(), "\033[1;95m"))
	assert.Contains(t, buf.String(), "\033[0mGuessIt 1.0.0\n")
}
