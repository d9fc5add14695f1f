// pkg/pptx/slide.go

package pptx

import (
	"encoding/xml"
	"strings"
)

// OOXML slide markup, reduced to the elements we read. Tags match by
// local name so the a:/p: namespace prefixes are irrelevant.

type slideXML struct {
	SpTree shapeTree `xml:"cSld>spTree"`
}

type shapeTree struct {
	Shapes   []shapeXML   `xml:"sp"`
	Pictures []pictureXML `xml:"pic"`
	Groups   []shapeTree  `xml:"grpSp"`
}

type shapeXML struct {
	NvSpPr struct {
		NvPr struct {
			Ph *placeholderXML `xml:"ph"`
		} `xml:"nvPr"`
	} `xml:"nvSpPr"`
	TxBody *textBodyXML `xml:"txBody"`
}

type placeholderXML struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

type textBodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

type paragraphXML struct {
	Props *paragraphPropsXML `xml:"pPr"`
	Runs  []runXML           `xml:"r"`
	Flds  []runXML           `xml:"fld"`
}

type paragraphPropsXML struct {
	Level     int        `xml:"lvl,attr"`
	BuChar    *buCharXML `xml:"buChar"`
	BuAutoNum *struct{}  `xml:"buAutoNum"`
	BuNone    *struct{}  `xml:"buNone"`
}

type buCharXML struct {
	Char string `xml:"char,attr"`
}

type runXML struct {
	Text string `xml:"t"`
}

type pictureXML struct {
	NvPicPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvPicPr"`
}

type cNvPrXML struct {
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr"`
	Title string `xml:"title,attr"`
}

type relationshipsXML struct {
	Rels []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func parseRelationships(data []byte) ([]relationshipXML, error) {
	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, err
	}
	return rels.Rels, nil
}

func parseSlide(number int, data []byte) (Slide, error) {
	var sld slideXML
	if err := xml.Unmarshal(data, &sld); err != nil {
		return Slide{}, err
	}

	slide := Slide{Number: number}
	collectShapes(&slide, sld.SpTree)
	return slide, nil
}

func collectShapes(slide *Slide, tree shapeTree) {
	for _, sp := range tree.Shapes {
		if sp.TxBody == nil {
			continue
		}
		if isTitlePlaceholder(sp.NvSpPr.NvPr.Ph) && slide.Title == "" {
			slide.Title = plainText(sp.TxBody)
			continue
		}
		slide.Content = append(slide.Content, formatBody(sp.TxBody)...)
	}
	for _, pic := range tree.Pictures {
		slide.Images = append(slide.Images, altText(pic))
	}
	for _, group := range tree.Groups {
		collectShapes(slide, group)
	}
}

// isTitlePlaceholder matches the title and centered-title placeholders,
// plus the legacy convention where the title carries placeholder index 0.
func isTitlePlaceholder(ph *placeholderXML) bool {
	if ph == nil {
		return false
	}
	switch ph.Type {
	case "title", "ctrTitle":
		return true
	}
	return ph.Type == "" && ph.Idx == "0"
}

// altText prefers the descr attribute, then title, then a non-generic
// shape name. A placeholder string marks images with no description.
func altText(pic pictureXML) string {
	p := pic.NvPicPr.CNvPr
	if s := strings.TrimSpace(p.Descr); s != "" {
		return s
	}
	if s := strings.TrimSpace(p.Title); s != "" {
		return s
	}
	name := strings.TrimSpace(p.Name)
	if name != "" && !genericShapeName(name) {
		return name
	}
	if name == "" {
		name = "Image"
	}
	return "[No alt-text] " + name
}

func genericShapeName(name string) bool {
	for _, prefix := range []string{"Picture ", "Graphic ", "Image "} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// plainText flattens a text body with no bullet or indent decoration,
// used for titles and notes.
func plainText(body *textBodyXML) string {
	var lines []string
	for _, p := range body.Paragraphs {
		if text := paragraphText(p); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// formatBody renders each paragraph with indentation and bullet markers
// reconstructed from the paragraph properties.
func formatBody(body *textBodyXML) []string {
	var lines []string
	for _, p := range body.Paragraphs {
		text := paragraphText(p)
		if text == "" {
			continue
		}
		lines = append(lines, formatParagraph(text, p.Props))
	}
	return lines
}

func paragraphText(p paragraphXML) string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	for _, f := range p.Flds {
		b.WriteString(f.Text)
	}
	return strings.TrimSpace(b.String())
}

var textBulletChars = []string{"•", "◦", "▪", "-", "*"}

func formatParagraph(text string, props *paragraphPropsXML) string {
	level := 0
	if props != nil {
		level = props.Level
	}

	// A bullet already typed into the text wins over the properties.
	bullet := ""
	for _, ch := range textBulletChars {
		if strings.HasPrefix(text, ch) {
			bullet = ch + " "
			text = strings.TrimSpace(strings.TrimPrefix(text, ch))
			break
		}
	}

	if bullet == "" && props != nil {
		switch {
		case props.BuNone != nil:
			// Explicitly unbulleted.
		case props.BuChar != nil && props.BuChar.Char != "":
			bullet = props.BuChar.Char + " "
		case props.BuAutoNum != nil:
			bullet = defaultBullet(level)
		}
	}
	if bullet == "" && level > 0 && (props == nil || props.BuNone == nil) {
		bullet = defaultBullet(level)
	}

	return strings.Repeat("  ", level) + bullet + text
}

func defaultBullet(level int) string {
	bullets := []string{"• ", "◦ ", "▪ "}
	if level < len(bullets) {
		return bullets[level]
	}
	return "- "
}

// parseNotes extracts the speaker notes text from a notesSlide part. The
// notes body is the body placeholder; slide-number and header/footer
// placeholders are skipped.
func parseNotes(data []byte) (string, error) {
	var sld slideXML
	if err := xml.Unmarshal(data, &sld); err != nil {
		return "", err
	}

	var lines []string
	var collect func(tree shapeTree)
	collect = func(tree shapeTree) {
		for _, sp := range tree.Shapes {
			if sp.TxBody == nil {
				continue
			}
			if ph := sp.NvSpPr.NvPr.Ph; ph != nil {
				switch ph.Type {
				case "sldNum", "hdr", "ftr", "dt", "sldImg":
					continue
				}
			}
			if text := plainText(sp.TxBody); text != "" {
				lines = append(lines, text)
			}
		}
		for _, group := range tree.Groups {
			collect(group)
		}
	}
	collect(sld.SpTree)
	return strings.Join(lines, "\n"), nil
}
