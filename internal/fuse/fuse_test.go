package fuse

import (
	"testing"

	"github.com/cosq-in/memochan/internal/domain"
)

func TestAttribute(t *testing.T) {
	tests := []struct {
		name         string
		segments     []domain.Segment
		turns        []domain.Turn
		wantSpeakers []string
	}{
		{
			name: "midpoint containment with inclusive bounds",
			segments: []domain.Segment{
				{Start: 0, End: 2, Text: "hi"},
				{Start: 2, End: 4, Text: "bye"},
			},
			turns: []domain.Turn{
				{Start: 0, End: 3, Speaker: "A"},
				{Start: 3, End: 5, Speaker: "B"},
			},
			// Midpoint 3.0 of the second segment lies in [0,3] inclusive,
			// so A wins by first-match, not B.
			wantSpeakers: []string{"A", "A"},
		},
		{
			name: "no turns labels everything Unknown",
			segments: []domain.Segment{
				{Start: 0, End: 2, Text: "hi"},
				{Start: 2, End: 4, Text: "bye"},
			},
			turns:        nil,
			wantSpeakers: []string{"Unknown", "Unknown"},
		},
		{
			name: "gap between turns labels uncovered segment Unknown",
			segments: []domain.Segment{
				{Start: 0, End: 1, Text: "a"},
				{Start: 5, End: 6, Text: "b"},
				{Start: 10, End: 11, Text: "c"},
			},
			turns: []domain.Turn{
				{Start: 0, End: 2, Speaker: "A"},
				{Start: 9, End: 12, Speaker: "B"},
			},
			wantSpeakers: []string{"A", "Unknown", "B"},
		},
		{
			name: "overlapping turns resolve to first match in turn order",
			segments: []domain.Segment{
				{Start: 1, End: 3, Text: "x"},
			},
			turns: []domain.Turn{
				{Start: 0, End: 4, Speaker: "A"},
				{Start: 1, End: 5, Speaker: "B"},
			},
			wantSpeakers: []string{"A"},
		},
		{
			name:         "no segments yields no lines",
			segments:     nil,
			turns:        []domain.Turn{{Start: 0, End: 1, Speaker: "A"}},
			wantSpeakers: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Attribute(tt.segments, tt.turns)
			if len(lines) != len(tt.wantSpeakers) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.wantSpeakers))
			}
			for i, line := range lines {
				if line.Speaker != tt.wantSpeakers[i] {
					t.Errorf("line %d speaker = %q, want %q", i, line.Speaker, tt.wantSpeakers[i])
				}
			}
		})
	}
}

func TestAttributePreservesSegments(t *testing.T) {
	segments := []domain.Segment{
		{Start: 0.5, End: 2.25, Text: "first"},
		{Start: 2.25, End: 4.75, Text: "second"},
		{Start: 4.75, End: 9, Text: "third"},
	}
	turns := []domain.Turn{{Start: 0, End: 10, Speaker: "SPEAKER_00"}}

	lines := Attribute(segments, turns)

	if len(lines) != len(segments) {
		t.Fatalf("got %d lines, want %d", len(lines), len(segments))
	}
	for i, line := range lines {
		if line.Start != segments[i].Start || line.End != segments[i].End {
			t.Errorf("line %d interval = [%v,%v], want [%v,%v]",
				i, line.Start, line.End, segments[i].Start, segments[i].End)
		}
		if line.Text != segments[i].Text {
			t.Errorf("line %d text = %q, want %q", i, line.Text, segments[i].Text)
		}
	}
}
