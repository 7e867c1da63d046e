package naming

import "strconv"

// Kind identifies the field a Match fills. Declaration order is the
// canonical record order.
type Kind int

const (
	KindSeasonEpisode Kind = iota
	KindYear
	KindScreenSize
	KindVideoCodec
	KindSource
	KindContainer

	numKinds
)

var kindNames = [numKinds]string{
	KindSeasonEpisode: "season_episode",
	KindYear:          "year",
	KindScreenSize:    "screen_size",
	KindVideoCodec:    "video_codec",
	KindSource:        "source",
	KindContainer:     "container",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Match is one extracted fact. The concrete types below are the only
// implementations.
type Match interface {
	Kind() Kind
	String() string
	appendTo(r *Record)
}

// SeasonEpisode is a season/episode pair; both numbers are positive.
type SeasonEpisode struct {
	Season  int
	Episode int
}

func (SeasonEpisode) Kind() Kind { return KindSeasonEpisode }
func (m SeasonEpisode) String() string {
	return "season=" + strconv.Itoa(m.Season) + " episode=" + strconv.Itoa(m.Episode)
}
func (m SeasonEpisode) appendTo(r *Record) {
	r.addInt(KeySeason, m.Season)
	r.addInt(KeyEpisode, m.Episode)
}

// Year is a release year in [MinYear, MaxYear].
type Year struct {
	Value int
}

func (Year) Kind() Kind           { return KindYear }
func (m Year) String() string     { return "year=" + strconv.Itoa(m.Value) }
func (m Year) appendTo(r *Record) { r.addInt(KeyYear, m.Value) }

// ScreenSizeLabel is the canonical resolution label.
type ScreenSizeLabel string

const (
	ScreenSize720p  ScreenSizeLabel = "720p"
	ScreenSize1080p ScreenSizeLabel = "1080p"
	ScreenSize2160p ScreenSizeLabel = "2160p" // Also matched by "4K".
)

// ScreenSize is the detected resolution.
type ScreenSize struct {
	Label ScreenSizeLabel
}

func (ScreenSize) Kind() Kind           { return KindScreenSize }
func (m ScreenSize) String() string     { return "screen_size=" + string(m.Label) }
func (m ScreenSize) appendTo(r *Record) { r.addString(KeyScreenSize, string(m.Label)) }

// VideoCodecLabel is the canonical codec name.
type VideoCodecLabel string

const (
	CodecH264 VideoCodecLabel = "H.264" // x264, h264
	CodecH265 VideoCodecLabel = "H.265" // x265, h265
	CodecXviD VideoCodecLabel = "XviD"
)

// VideoCodec is the detected video codec.
type VideoCodec struct {
	Label VideoCodecLabel
}

func (VideoCodec) Kind() Kind           { return KindVideoCodec }
func (m VideoCodec) String() string     { return "video_codec=" + string(m.Label) }
func (m VideoCodec) appendTo(r *Record) { r.addString(KeyVideoCodec, string(m.Label)) }

// SourceLabel is the canonical source medium.
type SourceLabel string

const (
	SourceBluRay SourceLabel = "BluRay"
	SourceHDTV   SourceLabel = "HDTV"
	SourceWEB    SourceLabel = "WEB"
)

// Source is the detected source medium.
type Source struct {
	Label SourceLabel
}

func (Source) Kind() Kind           { return KindSource }
func (m Source) String() string     { return "source=" + string(m.Label) }
func (m Source) appendTo(r *Record) { r.addString(KeySource, string(m.Label)) }

// Container is the lowercased text after the final dot, without the dot.
// It is not checked against a list of known extensions.
type Container struct {
	Extension string
}

func (Container) Kind() Kind           { return KindContainer }
func (m Container) String() string     { return "container=" + m.Extension }
func (m Container) appendTo(r *Record) { r.addString(KeyContainer, m.Extension) }
