package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/guessit/internal/config"
	"github.com/backmassage/guessit/internal/naming"
	"github.com/backmassage/guessit/internal/term"
)

var testProps = []naming.Property{
	{Key: "year"},
	{Key: "source", Values: []string{"BluRay", "HDTV", "WEB"}},
}

func TestWriteProperties(t *testing.T) {
	term.Configure(config.ColorNever, nil)

	tests := []struct {
		name   string
		format config.Format
		values bool
		want   string
	}{
		{"json keys", config.FormatJSON, false, `["year","source"]` + "\n"},
		{"json values", config.FormatJSON, true, `{"year":[],"source":["BluRay","HDTV","WEB"]}` + "\n"},
		{"yaml keys", config.FormatYAML, false, "- year\n- source\n"},
		{"text keys", config.FormatText, false, "GuessIt properties:\n  [+] year\n  [+] source\n"},
		{
			"text values", config.FormatText, true,
			"GuessIt properties:\n" +
				"  [+] year\n" +
				"  [+] source\n" +
				"    [!] BluRay\n" +
				"    [!] HDTV\n" +
				"    [!] WEB\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteProperties(&buf, testProps, tt.format, tt.values))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWritePropertiesYAMLValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProperties(&buf, naming.Properties(), config.FormatYAML, true))

	var got map[string][]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"720p", "1080p", "2160p"}, got["screen_size"])
	assert.Empty(t, got["container"])
	assert.Less(t, strings.Index(buf.String(), "season:"), strings.Index(buf.String(), "container:"))
}

func TestWritePropertiesUnknownFormat(t *testing.T) {
	assert.Error(t, WriteProperties(&bytes.Buffer{}, testProps, "xml", false))
}

func TestWriteProperty(t *testing.T) {
	r := naming.Guess("Show.S01E02.720p.mkv")

	tests := []struct {
		key  string
		want string
	}{
		{naming.KeyEpisode, "2\n"},
		{naming.KeyScreenSize, "720p\n"},
		{naming.KeyYear, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteProperty(&buf, r, tt.key))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
