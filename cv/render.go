package cv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/campushire/platform/models"
)

// Page geometry in millimetres
const (
	pageMargin        = 10.0
	pageBreakMargin   = 15.0
	headerHeight      = 10.0
	headerGap         = 5.0
	iconX             = 10.0
	iconWidth         = 8.0
	iconAdvance       = 10.0
	titleHeight       = 8.0
	titleGap          = 4.0
	lineHeight        = 6.0
	bodyGap           = 2.0
	titleFillGrey     = 220
	fontFamily        = "Arial"
	headerFontSize    = 12.0
	titleFontSize     = 10.0
	bodyFontSize      = 10.0
	emailBodyFontSize = 9.0
)

// icons maps a section key to its icon file name
var icons = map[string]string{
	"Email":      "icon_email.png",
	"Objective":  "icon_objective.png",
	"Education":  "icon_education.png",
	"Experience": "icon_experience.png",
	"Skills":     "icon_skills.png",
}

// Renderer lays CV sections out on A4 pages
type Renderer struct {
	iconsPath string
}

// NewRenderer creates a renderer reading section icons from iconsPath
func NewRenderer(iconsPath string) *Renderer {
	return &Renderer{iconsPath: iconsPath}
}

// Render writes the PDF for sections to w
func (r *Renderer) Render(w io.Writer, details *models.UserDetails, sections []Section) error {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageBreakMargin)
	doc.SetTitle(tr(headerTitle(details)), false)
	doc.SetCreator("CampusHire", false)

	doc.SetHeaderFunc(func() {
		doc.SetFont(fontFamily, "B", headerFontSize)
		doc.CellFormat(0, headerHeight, tr(headerTitle(details)), "", 1, "C", false, 0, "")
		doc.Ln(headerGap)
	})

	doc.AddPage()

	for _, section := range sections {
		r.sectionTitle(doc, tr(section.Title), sectionIcon(section))

		for _, b := range bodyBlocks(section) {
			doc.SetFont(fontFamily, b.style, b.size)
			doc.MultiCell(0, lineHeight, tr(b.text), "", b.align, false)
			doc.Ln(bodyGap)
		}

		if doc.Err() {
			return fmt.Errorf("failed to render section %q: %w", section.Title, doc.Error())
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// block is a run of body text set in one font and alignment
type block struct {
	text  string
	style string
	size  float64
	align string
}

// sectionIcon returns the icon file of s. Every email section gets the email
// icon whatever follows "Email" in its title.
func sectionIcon(s Section) string {
	if s.Kind() == KindEmail {
		return icons["Email"]
	}
	return icons[s.Key()]
}

// bodyBlocks lays out the body of s. Emails are centred in a smaller font;
// education and experience go line by line with the first line in bold.
func bodyBlocks(s Section) []block {
	switch s.Kind() {
	case KindEmail:
		return []block{{text: s.Body, size: emailBodyFontSize, align: "C"}}
	case KindDetailed:
		lines := s.Lines()
		blocks := make([]block, len(lines))
		for i, line := range lines {
			blocks[i] = block{text: line, size: bodyFontSize, align: "J"}
		}
		blocks[0].style = "B"
		return blocks
	default:
		return []block{{text: s.Body, size: bodyFontSize, align: "J"}}
	}
}

func (r *Renderer) sectionTitle(doc *fpdf.Fpdf, title, icon string) {
	if path := r.iconPath(icon); path != "" {
		doc.ImageOptions(path, iconX, doc.GetY(), iconWidth, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		doc.SetX(doc.GetX() + iconAdvance)
	}
	doc.SetFillColor(titleFillGrey, titleFillGrey, titleFillGrey)
	doc.SetFont(fontFamily, "B", titleFontSize)
	doc.CellFormat(0, titleHeight, title, "", 1, "L", true, 0, "")
	doc.Ln(titleGap)
}

// iconPath returns the icon file path, or "" when there is none on disk
func (r *Renderer) iconPath(icon string) string {
	if icon == "" || r.iconsPath == "" {
		return ""
	}
	path := filepath.Join(r.iconsPath, icon)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return ""
	}
	return path
}

// headerTitle is "<fname> - <degree> in <field> at <school>" for the latest
// education entry, or just the first name when there is none
func headerTitle(details *models.UserDetails) string {
	edu := details.LatestEducation()
	if edu == nil {
		return strings.TrimSpace(details.FName)
	}
	return fmt.Sprintf("%s - %s in %s at %s", details.FName, edu.Degree, edu.FieldOfStudy, edu.School)
}
