// Package naming extracts release metadata from a single media filename.
//
// Types:
//   - Match (SeasonEpisode, Year, ScreenSize, VideoCodec, Source, Container)
//   - Recognizer (ordered table of per-field detectors)
//   - Record (ordered key/value result with JSON and YAML encoders)
//
// Functions:
//   - Guess(filename) → Record
//     Runs every recognizer against the same input and assembles the
//     fields in canonical order: season, episode, year, screen_size,
//     video_codec, source, container.
//   - GuessParallel(ctx, filename) → Record
//     Same result, recognizers fanned out across goroutines.
//   - Detect(filename) → []Match
//     The typed matches behind a Record, in canonical order.
//
// Every recognizer is total: a filename with nothing recognizable yields an
// empty Record, never an error.
package naming
