package naming

import (
	"regexp"
	"strconv"
	"strings"
)

// Recognizer detects one field kind. Match is pure and total: it never
// fails, it only reports whether the field was found. Recognizers share no
// state and may run in any order or concurrently.
type Recognizer struct {
	Name  string
	Kind  Kind
	Match func(filename string) (Match, bool)
}

// Recognizers is the recognizer table, one entry per field kind. Each
// entry writes a distinct kind, so evaluation order does not change the
// result.
var Recognizers = []Recognizer{
	{"Season-episode", KindSeasonEpisode, matchSeasonEpisode},
	{"Year", KindYear, matchYear},
	{"Screen-size", KindScreenSize, matchScreenSize},
	{"Video-codec", KindVideoCodec, matchVideoCodec},
	{"Source", KindSource, matchSource},
	{"Container", KindContainer, matchContainer},
}

// --- Season / episode ---

// A marker is the letter immediately followed by a run of digits. Only the
// first season marker is considered, paired with the first episode marker
// after it; "S01E01-S02E02" yields only S01E01.
var (
	reSeasonMarker  = regexp.MustCompile(`S([0-9]+)`)
	reEpisodeMarker = regexp.MustCompile(`E([0-9]+)`)
)

func matchSeasonEpisode(s string) (Match, bool) {
	sm := reSeasonMarker.FindStringSubmatchIndex(s)
	if sm == nil {
		return nil, false
	}
	season, ok := positive(s[sm[2]:sm[3]])
	if !ok {
		return nil, false
	}

	rest := s[sm[1]:]
	em := reEpisodeMarker.FindStringSubmatch(rest)
	if em == nil {
		return nil, false
	}
	episode, ok := positive(em[1])
	if !ok {
		return nil, false
	}
	return SeasonEpisode{Season: season, Episode: episode}, true
}

// positive parses a digit run. Zero and values that overflow int are
// rejected.
func positive(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// --- Year ---

// Accepted year range, inclusive.
const (
	MinYear = 1900
	MaxYear = 2030
)

// matchYear returns the leftmost 4-digit window that starts with 1 or 2 and
// falls inside [MinYear, MaxYear]. Windows overlap: "12001" yields 2001.
func matchYear(s string) (Match, bool) {
	for i := 0; i+4 <= len(s); i++ {
		if s[i] != '1' && s[i] != '2' {
			continue
		}
		if !isDigit(s[i+1]) || !isDigit(s[i+2]) || !isDigit(s[i+3]) {
			continue
		}
		y := int(s[i]-'0')*1000 + int(s[i+1]-'0')*100 + int(s[i+2]-'0')*10 + int(s[i+3]-'0')
		if y >= MinYear && y <= MaxYear {
			return Year{Value: y}, true
		}
	}
	return nil, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// --- Fixed-priority substring recognizers ---

// alternative maps any of its needles to a canonical label. Alternatives
// are tried in table order; the first one with a needle present in the
// input wins regardless of where the needle sits in the string.
type alternative struct {
	needles []string
	label   string
}

func firstAlternative(s string, alts []alternative) (string, bool) {
	for _, a := range alts {
		for _, n := range a.needles {
			if strings.Contains(s, n) {
				return a.label, true
			}
		}
	}
	return "", false
}

var screenSizeAlternatives = []alternative{
	{[]string{"720p"}, string(ScreenSize720p)},
	{[]string{"1080p"}, string(ScreenSize1080p)},
	{[]string{"2160p", "4K"}, string(ScreenSize2160p)},
}

var videoCodecAlternatives = []alternative{
	{[]string{"x264", "h264"}, string(CodecH264)},
	{[]string{"x265", "h265"}, string(CodecH265)},
	{[]string{"XviD"}, string(CodecXviD)},
}

var sourceAlternatives = []alternative{
	{[]string{"BluRay"}, string(SourceBluRay)},
	{[]string{"HDTV"}, string(SourceHDTV)},
	{[]string{"WEB"}, string(SourceWEB)},
}

func matchScreenSize(s string) (Match, bool) {
	label, ok := firstAlternative(s, screenSizeAlternatives)
	if !ok {
		return nil, false
	}
	return ScreenSize{Label: ScreenSizeLabel(label)}, true
}

func matchVideoCodec(s string) (Match, bool) {
	label, ok := firstAlternative(s, videoCodecAlternatives)
	if !ok {
		return nil, false
	}
	return VideoCodec{Label: VideoCodecLabel(label)}, true
}

func matchSource(s string) (Match, bool) {
	label, ok := firstAlternative(s, sourceAlternatives)
	if !ok {
		return nil, false
	}
	return Source{Label: SourceLabel(label)}, true
}

// --- Container ---

// matchContainer takes everything after the last dot with ASCII letters
// lowercased; all other bytes are kept as is. There is no extension
// allow-list; "a.b.mkv" yields "mkv", "file." and "file" yield nothing.
func matchContainer(s string) (Match, bool) {
	i := strings.LastIndexByte(s, '.')
	if i < 0 || i == len(s)-1 {
		return nil, false
	}
	return Container{Extension: lowerASCII(s[i+1:])}, true
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
