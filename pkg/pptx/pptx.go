// Package pptx extracts text from PowerPoint presentations by reading the
// OOXML parts directly: slide XML, speaker notes, and picture alt-text.
package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/opskit-dev/opskit/pkg/opserr"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

// Slide is the extracted content of one slide.
type Slide struct {
	Number  int
	Title   string
	Content []string
	Images  []string
	Notes   string
}

var slidePathRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Extract opens a .pptx file and extracts every slide's text.
func Extract(rc *opsio.RuntimeContext, pptxPath string) ([]Slide, error) {
	if !strings.HasSuffix(strings.ToLower(pptxPath), ".pptx") {
		return nil, opserr.NewExpectedError(rc.Ctx,
			fmt.Errorf("input file must be a .pptx file: %s", pptxPath))
	}

	zr, err := zip.OpenReader(pptxPath)
	if err != nil {
		return nil, opserr.NewExpectedError(rc.Ctx,
			fmt.Errorf("cannot open presentation %s: %w", pptxPath, err))
	}
	defer zr.Close()

	return ExtractArchive(rc, &zr.Reader)
}

// ExtractArchive extracts slides from an already-open OOXML archive.
func ExtractArchive(rc *opsio.RuntimeContext, zr *zip.Reader) ([]Slide, error) {
	logger := otelzap.Ctx(rc.Ctx)

	parts := make(map[string][]byte)
	var slideNumbers []int
	for _, f := range zr.File {
		if m := slidePathRe.FindStringSubmatch(f.Name); m != nil {
			n, _ := strconv.Atoi(m[1])
			slideNumbers = append(slideNumbers, n)
		}
		data, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read archive entry %s: %w", f.Name, err)
		}
		parts[f.Name] = data
	}

	if len(slideNumbers) == 0 {
		return nil, opserr.NewExpectedError(rc.Ctx,
			fmt.Errorf("no slides found - is this a valid .pptx file?"))
	}
	sort.Ints(slideNumbers)

	slides := make([]Slide, 0, len(slideNumbers))
	for _, n := range slideNumbers {
		slidePath := fmt.Sprintf("ppt/slides/slide%d.xml", n)
		slide, err := parseSlide(n, parts[slidePath])
		if err != nil {
			logger.Warn("Skipping unparseable slide",
				zap.Int("slide", n), zap.Error(err))
			continue
		}

		if notesPath := notesPartFor(parts, slidePath); notesPath != "" {
			notes, err := parseNotes(parts[notesPath])
			if err != nil {
				logger.Warn("Skipping unparseable notes",
					zap.Int("slide", n), zap.Error(err))
			} else {
				slide.Notes = notes
			}
		}
		slides = append(slides, slide)
	}

	logger.Info("Presentation extracted", zap.Int("slides", len(slides)))
	return slides, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rd, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	return io.ReadAll(rd)
}

// notesPartFor resolves the notes part for a slide through the slide's
// relationships file. Returns "" when the slide has no notes.
func notesPartFor(parts map[string][]byte, slidePath string) string {
	relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
	data, ok := parts[relsPath]
	if !ok {
		return ""
	}
	rels, err := parseRelationships(data)
	if err != nil {
		return ""
	}
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, "/notesSlide") {
			target := path.Clean(path.Join(path.Dir(slidePath), rel.Target))
			if _, ok := parts[target]; ok {
				return target
			}
		}
	}
	return ""
}
