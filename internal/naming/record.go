package naming

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Record keys.
const (
	KeySeason     = "season"
	KeyEpisode    = "episode"
	KeyYear       = "year"
	KeyScreenSize = "screen_size"
	KeyVideoCodec = "video_codec"
	KeySource     = "source"
	KeyContainer  = "container"
)

// Entry is one key/value pair of a Record. Value is either an int or a
// string.
type Entry struct {
	Key   string
	Value any
}

// Record is the ordered result of a Guess. The zero value is an empty
// record. Each call to Guess returns a fresh Record owned by the caller.
type Record struct {
	entries []Entry
}

func (r *Record) add(key string, v any) {
	r.entries = append(r.entries, Entry{key, v})
}

func (r *Record) addInt(key string, v int)       { r.add(key, v) }
func (r *Record) addString(key string, v string) { r.add(key, v) }

// Len returns the number of fields in the record.
func (r Record) Len() int { return len(r.entries) }

// Entries returns a copy of the fields in record order.
func (r Record) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Keys returns the field names in record order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, e := range r.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the record as a flat JSON object in record order:
//
//	{"season":1,"episode":2,"container":"mkv"}
//
// An empty record encodes as {}.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(2 + len(r.entries)*24)
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, e.Key)
		buf.WriteByte(':')
		switch v := e.Value.(type) {
		case int:
			buf.WriteString(strconv.Itoa(v))
		case string:
			writeJSONString(&buf, v)
		default:
			return nil, fmt.Errorf("record field %q: unsupported value type %T", e.Key, v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString appends s quoted. Only the quote, the backslash and
// control bytes are escaped; every other byte, including & < > and bytes
// that are not valid UTF-8, is written as it appears in the filename.
func writeJSONString(buf *bytes.Buffer, s string) {
	const hex = "0123456789abcdef"
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c < 0x20:
			buf.WriteString(`\u00`)
			buf.WriteByte(hex[c>>4])
			buf.WriteByte(hex[c&0xf])
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}

// MarshalYAML returns a mapping node so yaml.v3 keeps record order instead
// of sorting keys.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if len(r.entries) == 0 {
		node.Style = yaml.FlowStyle
	}
	for _, e := range r.entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		val := &yaml.Node{Kind: yaml.ScalarNode}
		switch v := e.Value.(type) {
		case int:
			val.Tag = "!!int"
			val.Value = strconv.Itoa(v)
		case string:
			val.Tag = "!!str"
			val.Value = v
		default:
			if err := val.Encode(v); err != nil {
				return nil, err
			}
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// String returns the JSON form of the record.
func (r Record) String() string {
	b, err := r.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}
