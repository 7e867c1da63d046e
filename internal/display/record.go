package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/guessit/internal/config"
	"github.com/backmassage/guessit/internal/naming"
	"github.com/backmassage/guessit/internal/term"
)

// EmptyText is printed by the text format when nothing was recognized.
const EmptyText = "(no metadata)"

// WriteRecord writes r to w in the requested format, newline terminated.
func WriteRecord(w io.Writer, r naming.Record, format config.Format) error {
	switch format {
	case config.FormatJSON, "":
		b, err := r.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		b = append(b, '\n')
		_, err = w.Write(b)
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatText:
		_, err := io.WriteString(w, FormatRecord(r))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// FormatRecord renders r as aligned "key: value" lines, keys in Cyan when
// colors are enabled.
//
//	season:      1
//	episode:     2
//	screen_size: 1080p
func FormatRecord(r naming.Record) string {
	entries := r.Entries()
	if len(entries) == 0 {
		return EmptyText + "\n"
	}

	width := 0
	for _, e := range entries {
		if len(e.Key) > width {
			width = len(e.Key)
		}
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(term.Cyan)
		b.WriteString(e.Key)
		b.WriteString(":")
		b.WriteString(term.NC)
		b.WriteString(strings.Repeat(" ", width-len(e.Key)+1))
		b.WriteString(formatValue(e.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
