package naming

// Property describes one record field. Values lists the labels a field with
// a fixed vocabulary can hold, in priority order; it is empty for the
// numeric fields and the container.
type Property struct {
	Key    string
	Values []string
}

// Properties returns every record field in record order.
func Properties() []Property {
	return []Property{
		{Key: KeySeason},
		{Key: KeyEpisode},
		{Key: KeyYear},
		{Key: KeyScreenSize, Values: labels(screenSizeAlternatives)},
		{Key: KeyVideoCodec, Values: labels(videoCodecAlternatives)},
		{Key: KeySource, Values: labels(sourceAlternatives)},
		{Key: KeyContainer},
	}
}

// IsProperty reports whether key names a record field.
func IsProperty(key string) bool {
	for _, p := range Properties() {
		if p.Key == key {
			return true
		}
	}
	return false
}

func labels(alts []alternative) []string {
	out := make([]string, len(alts))
	for i, a := range alts {
		out[i] = a.label
	}
	return out
}
