package sink

import (
	"math"

	"github.com/cosq-in/memochan/internal/domain"
)

// Response is the structured request-mode result payload.
type Response struct {
	JobID               string           `json:"job_id"`
	Segments            []SegmentPayload `json:"segments"`
	Language            string           `json:"language"`
	LanguageProbability float64          `json:"language_probability,omitempty"`
	Summary             string           `json:"summary,omitempty"`
}

// SegmentPayload is one attributed line with rounded timestamps.
type SegmentPayload struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
}

// BuildResponse converts a job result into the wire payload, rounding
// timestamps to two decimals.
func BuildResponse(result *domain.Result) Response {
	segments := make([]SegmentPayload, 0, len(result.Lines))
	for _, line := range result.Lines {
		segments = append(segments, SegmentPayload{
			Start:   round2(line.Start),
			End:     round2(line.End),
			Speaker: line.Speaker,
			Text:    line.Text,
		})
	}
	return Response{
		JobID:               result.JobID,
		Segments:            segments,
		Language:            result.Language,
		LanguageProbability: result.LanguageProbability,
		Summary:             result.Summary,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
