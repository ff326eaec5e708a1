package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type PDFData struct {
	Record      DestinationRecord
	Days        int
	Tips        []string
	GeneratedAt time.Time
}

// GeneratePDFBytes renders a plan and returns raw bytes (no filesystem needed)
func GeneratePDFBytes(data PDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ── Footer ───────────────────────────────────────────────
	generated := data.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("Generated by TripSketch on %s - sample content, not a booking",
				generated.UTC().Format("02 Jan 2006, 15:04 UTC")),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripSketch", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67) // gold
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Sample Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Title ────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(170, 8, tr(fmt.Sprintf("Your %s Adventure", data.Record.Name)), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.MultiCell(170, 5, tr(data.Record.Description), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	bullet := func(text string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(6, 6, "-", "", 0, "L", false, 0, "")
		pdf.MultiCell(164, 6, tr(text), "", "L", false)
	}

	// ── Highlights ───────────────────────────────────────────
	sectionHeader("Notable Places to Visit")
	for _, h := range data.Record.Highlights {
		bullet(h)
	}
	pdf.Ln(4)

	// ── Itinerary ────────────────────────────────────────────
	sectionHeader(fmt.Sprintf("Your %d-Day Itinerary", data.Days))
	for _, day := range data.Record.Itinerary {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(13, 24, 37)
		pdf.CellFormat(170, 7, fmt.Sprintf("Day %d", day.Day), "B", 1, "L", false, 0, "")
		for _, a := range day.Activities {
			bullet(a)
		}
		pdf.Ln(2)
	}
	pdf.Ln(2)

	// ── Tips ─────────────────────────────────────────────────
	if len(data.Tips) > 0 {
		sectionHeader("Travel Tips")
		for _, t := range data.Tips {
			bullet(t)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
