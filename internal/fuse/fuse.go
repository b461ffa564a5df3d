package fuse

import "github.com/cosq-in/memochan/internal/domain"

// Attribute assigns a speaker label to each transcript segment using the
// diarization turns. For each segment the midpoint (start+end)/2 is matched
// against the turns in order; the first turn whose interval contains the
// midpoint (inclusive on both bounds) wins, even if later turns also contain
// it. Segments nobody covers get the "Unknown" sentinel.
//
// The midpoint heuristic misattributes segments that straddle a speaker
// change. Downstream consumers depend on this exact behavior, so any
// replacement must keep first-match semantics.
//
// Segment count, order, intervals and text are copied verbatim; fusion only
// adds the label.
func Attribute(segments []domain.Segment, turns []domain.Turn) []domain.Line {
	lines := make([]domain.Line, 0, len(segments))
	for _, seg := range segments {
		speaker := domain.UnknownSpeaker
		if len(turns) > 0 {
			mid := (seg.Start + seg.End) / 2
			for _, t := range turns {
				if t.Start <= mid && mid <= t.End {
					speaker = t.Speaker
					break
				}
			}
		}
		lines = append(lines, domain.Line{
			Start:   seg.Start,
			End:     seg.End,
			Speaker: speaker,
			Text:    seg.Text,
		})
	}
	return lines
}
