package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/guessit/internal/config"
	"github.com/backmassage/guessit/internal/naming"
	"github.com/backmassage/guessit/internal/term"
)

// WriteProperties lists props in the requested format. With values set,
// each field is followed by its fixed labels:
//
//	json: {"screen_size":["720p","1080p","2160p"],...} or ["season",...]
//	yaml: a mapping of field to label list, or a list of fields
//	text: "  [+] field" lines, each followed by "    [!] label" lines
func WriteProperties(w io.Writer, props []naming.Property, format config.Format, values bool) error {
	switch format {
	case config.FormatJSON, "":
		b, err := propertiesJSON(props, values)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		b = append(b, '\n')
		_, err = w.Write(b)
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(propertiesNode(props, values)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatText:
		var b bytes.Buffer
		b.WriteString("GuessIt properties:\n")
		for _, p := range props {
			fmt.Fprintf(&b, "  [+] %s%s%s\n", term.Cyan, p.Key, term.NC)
			if values {
				for _, v := range p.Values {
					fmt.Fprintf(&b, "    [!] %s\n", v)
				}
			}
		}
		_, err := w.Write(b.Bytes())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// propertiesJSON keeps field order, which a Go map would not.
func propertiesJSON(props []naming.Property, values bool) ([]byte, error) {
	if !values {
		keys := make([]string, len(props))
		for i, p := range props {
			keys[i] = p.Key
		}
		return json.Marshal(keys)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range props {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		vals := p.Values
		if vals == nil {
			vals = []string{}
		}
		v, err := json.Marshal(vals)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func propertiesNode(props []naming.Property, values bool) *yaml.Node {
	str := func(s string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	}

	if !values {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, p := range props {
			seq.Content = append(seq.Content, str(p.Key))
		}
		return seq
	}

	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range props {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if len(p.Values) == 0 {
			seq.Style = yaml.FlowStyle
		}
		for _, v := range p.Values {
			seq.Content = append(seq.Content, str(v))
		}
		m.Content = append(m.Content, str(p.Key), seq)
	}
	return m
}

// WriteProperty writes the value r holds under key on its own line, or an
// empty line when the field was not recognized.
func WriteProperty(w io.Writer, r naming.Record, key string) error {
	v, ok := r.Get(key)
	if !ok {
		_, err := io.WriteString(w, "\n")
		return err
	}
	_, err := io.WriteString(w, formatValue(v)+"\n")
	return err
}
