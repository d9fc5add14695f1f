// pkg/pptx/format.go

package pptx

import (
	"fmt"
	"strings"
)

// Format renders the extracted slides as plain text, one block per slide.
func Format(slides []Slide) string {
	blocks := make([]string, 0, len(slides))
	for _, s := range slides {
		blocks = append(blocks, formatSlide(s))
	}
	return strings.Join(blocks, "\n")
}

func formatSlide(s Slide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== SLIDE %d ===\n", s.Number)

	if s.Title != "" {
		b.WriteString("Title:\n")
		b.WriteString(s.Title)
		b.WriteString("\n\n")
	}
	if len(s.Content) > 0 {
		b.WriteString("Content:\n")
		for _, line := range s.Content {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(s.Images) > 0 {
		b.WriteString("Images:\n")
		for i, alt := range s.Images {
			fmt.Fprintf(&b, "Image %d: %s\n", i+1, alt)
		}
		b.WriteString("\n")
	}
	if s.Notes != "" {
		b.WriteString("Notes:\n")
		b.WriteString(s.Notes)
		b.WriteString("\n\n")
	}
	return b.String()
}
