// pkg/pptx/pptx_test.go

package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opskit-dev/opskit/pkg/opserr"
	"github.com/opskit-dev/opskit/pkg/opsio"
)

func testRC() *opsio.RuntimeContext {
	return opsio.NewContext(context.Background(), "test")
}

// buildArchive assembles an in-memory OOXML archive from part name to
// XML content.
func buildArchive(t *testing.T, parts map[string]string) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

const slideOneXML = `<?xml version="1.0"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>Quarterly Review</a:t></a:r></a:p></p:txBody>
    </p:sp>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>
      <p:txBody>
        <a:p>
          <a:pPr><a:buChar char="-"/></a:pPr>
          <a:r><a:t>Revenue up </a:t></a:r><a:r><a:t>12%</a:t></a:r>
        </a:p>
        <a:p>
          <a:pPr lvl="1"/>
          <a:r><a:t>Mostly subscriptions</a:t></a:r>
        </a:p>
        <a:p>
          <a:pPr><a:buNone/></a:pPr>
          <a:r><a:t>Closing remark</a:t></a:r>
        </a:p>
      </p:txBody>
    </p:sp>
    <p:pic>
      <p:nvPicPr><p:cNvPr id="4" name="Picture 3" descr="Revenue chart by quarter"/></p:nvPicPr>
    </p:pic>
  </p:spTree></p:cSld>
</p:sld>`

const slideTwoXML = `<?xml version="1.0"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree>
    <p:sp>
      <p:nvSpPr><p:nvPr/></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>Plain text box</a:t></a:r></a:p></p:txBody>
    </p:sp>
    <p:pic>
      <p:nvPicPr><p:cNvPr id="5" name="Picture 4"/></p:nvPicPr>
    </p:pic>
  </p:spTree></p:cSld>
</p:sld>`

const slideOneRels = `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide1.xml"/>
</Relationships>`

const notesOneXML = `<?xml version="1.0"?>
<p:notes xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
         xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>
      <p:txBody><a:p><a:r><a:t>Mention the churn numbers.</a:t></a:r></a:p></p:txBody>
    </p:sp>
    <p:sp>
      <p:nvSpPr><p:nvPr><p:ph type="sldNum" idx="10"/></p:nvPr></p:nvSpPr>
      <p:txBody><a:p><a:fld><a:t>1</a:t></a:fld></a:p></p:txBody>
    </p:sp>
  </p:spTree></p:cSld>
</p:notes>`

func testPresentation(t *testing.T) *zip.Reader {
	return buildArchive(t, map[string]string{
		"ppt/slides/slide1.xml":             slideOneXML,
		"ppt/slides/slide2.xml":             slideTwoXML,
		"ppt/slides/_rels/slide1.xml.rels":  slideOneRels,
		"ppt/notesSlides/notesSlide1.xml":   notesOneXML,
		"[Content_Types].xml":               `<Types/>`,
	})
}

func TestExtractArchive(t *testing.T) {
	t.Parallel()

	slides, err := ExtractArchive(testRC(), testPresentation(t))
	require.NoError(t, err)
	require.Len(t, slides, 2)

	s1 := slides[0]
	assert.Equal(t, 1, s1.Number)
	assert.Equal(t, "Quarterly Review", s1.Title)
	assert.Equal(t, []string{
		"- Revenue up 12%",
		"  ◦ Mostly subscriptions",
		"Closing remark",
	}, s1.Content)
	assert.Equal(t, []string{"Revenue chart by quarter"}, s1.Images)
	assert.Equal(t, "Mention the churn numbers.", s1.Notes)

	s2 := slides[1]
	assert.Equal(t, 2, s2.Number)
	assert.Empty(t, s2.Title)
	assert.Equal(t, []string{"Plain text box"}, s2.Content)
	assert.Equal(t, []string{"[No alt-text] Picture 4"}, s2.Images)
	assert.Empty(t, s2.Notes)
}

func TestExtractArchiveNoSlides(t *testing.T) {
	t.Parallel()

	zr := buildArchive(t, map[string]string{"mimetype": "zip"})
	_, err := ExtractArchive(testRC(), zr)
	require.Error(t, err)
	assert.True(t, opserr.IsExpectedUserError(err))
}

func TestExtractRejectsNonPptx(t *testing.T) {
	t.Parallel()

	_, err := Extract(testRC(), "slides.odp")
	require.Error(t, err)
	assert.True(t, opserr.IsExpectedUserError(err))
}

func TestFormatParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		props *paragraphPropsXML
		want  string
	}{
		{
			name: "explicit bullet char",
			text: "first point",
			props: &paragraphPropsXML{
				BuChar: &buCharXML{Char: "•"},
			},
			want: "• first point",
		},
		{
			name:  "no properties at level zero",
			text:  "heading line",
			props: nil,
			want:  "heading line",
		},
		{
			name: "bullet suppressed",
			text: "closing",
			props: &paragraphPropsXML{
				Level:  1,
				BuNone: &struct{}{},
			},
			want: "  closing",
		},
		{
			name: "auto numbering gets default marker",
			text: "step one",
			props: &paragraphPropsXML{
				BuAutoNum: &struct{}{},
			},
			want: "• step one",
		},
		{
			name:  "indent implies bullet",
			text:  "nested detail",
			props: &paragraphPropsXML{Level: 2},
			want:  "    ▪ nested detail",
		},
		{
			name:  "deep nesting falls back to dash",
			text:  "fine print",
			props: &paragraphPropsXML{Level: 3},
			want:  "      - fine print",
		},
		{
			name:  "typed bullet is preserved and deduplicated",
			text:  "• already bulleted",
			props: &paragraphPropsXML{BuChar: &buCharXML{Char: "-"}},
			want:  "• already bulleted",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatParagraph(tt.text, tt.props))
		})
	}
}

func TestAltText(t *testing.T) {
	t.Parallel()

	pic := func(name, descr, title string) pictureXML {
		var p pictureXML
		p.NvPicPr.CNvPr = cNvPrXML{Name: name, Descr: descr, Title: title}
		return p
	}

	assert.Equal(t, "A dashboard", altText(pic("Picture 1", "A dashboard", "")))
	assert.Equal(t, "Dashboard title", altText(pic("Picture 1", "", "Dashboard title")))
	assert.Equal(t, "Architecture diagram", altText(pic("Architecture diagram", "", "")))
	assert.Equal(t, "[No alt-text] Picture 2", altText(pic("Picture 2", "", "")))
	assert.Equal(t, "[No alt-text] Image", altText(pic("", "", "")))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	out := Format([]Slide{
		{
			Number:  1,
			Title:   "Intro",
			Content: []string{"• hello"},
			Images:  []string{"Team photo"},
			Notes:   "Welcome everyone.",
		},
		{Number: 2},
	})

	assert.Contains(t, out, "=== SLIDE 1 ===")
	assert.Contains(t, out, "Title:\nIntro")
	assert.Contains(t, out, "Content:\n• hello")
	assert.Contains(t, out, "Image 1: Team photo")
	assert.Contains(t, out, "Notes:\nWelcome everyone.")
	assert.Contains(t, out, "=== SLIDE 2 ===")
}
