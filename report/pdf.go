package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Page-height budget before forcing a break, in mm on A4.
const (
	sectionBreakY = 250
	lineBreakY    = 270
	topMargin     = 20
)

// RenderPDF serializes a compiled document to PDF bytes. A QR code with
// the plan reference goes on the first page so a printed copy can be
// pulled up again.
func RenderPDF(doc Document, planRef string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.Text(pageWidth/2-pdf.GetStringWidth(doc.Title)/2, topMargin, doc.Title)

	// Date range
	pdf.SetFont("Arial", "", 12)
	pdf.Text(20, 30, fmt.Sprintf("Trip Dates: %s to %s", doc.StartDate, doc.EndDate))

	if planRef != "" {
		if qrPNG, err := qrcode.Encode(planRef, qrcode.Medium, 128); err == nil {
			imgOpts := gofpdf.ImageOptions{ImageType: "png"}
			pdf.RegisterImageOptionsReader("planref", imgOpts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("planref", pageWidth-45, 10, 25, 25, false, imgOpts, 0, "")
		}
	}

	yPos := 40.0

	pdf.SetFont("Arial", "B", 16)
	pdf.Text(20, yPos, "Itinerary")
	yPos += 10

	for _, day := range doc.Days {
		if yPos > sectionBreakY {
			pdf.AddPage()
			yPos = topMargin
		}

		pdf.SetFont("Arial", "B", 14)
		pdf.Text(20, yPos, fmt.Sprintf("Day: %s", day.Date))
		yPos += 10

		for _, v := range day.Visits {
			pdf.SetFont("Arial", "", 12)
			pdf.Text(30, yPos, fmt.Sprintf("%s - %s", v.StartTime, v.Name))
			yPos += 7

			pdf.SetFont("Arial", "", 10)
			pdf.Text(35, yPos, fmt.Sprintf("Duration: %d minutes", v.Duration))
			yPos += 5
			pdf.Text(35, yPos, fmt.Sprintf("Location: %s", v.Address))
			yPos += 5
			pdf.Text(35, yPos, fmt.Sprintf("Transport: %s", strings.Join(v.Buses, ", ")))
			yPos += 10

			if yPos > lineBreakY {
				pdf.AddPage()
				yPos = topMargin
			}
		}

		yPos += 10
	}

	if len(doc.Checklist) > 0 {
		pdf.AddPage()
		yPos = topMargin

		pdf.SetFont("Arial", "B", 16)
		pdf.Text(20, yPos, "Packing Checklist")
		yPos += 10

		for _, section := range doc.Checklist {
			if yPos > sectionBreakY {
				pdf.AddPage()
				yPos = topMargin
			}

			pdf.SetFont("Arial", "B", 14)
			pdf.Text(20, yPos, section.Category)
			yPos += 8

			for _, item := range section.Items {
				pdf.SetFont("Arial", "", 10)
				marker := "[ ]"
				suffix := ""
				if item.Checked {
					marker = "[x]"
					suffix = " (Packed)"
				}
				pdf.Text(30, yPos, fmt.Sprintf("%s %s%s", marker, item.Name, suffix))
				yPos += 6

				if yPos > lineBreakY {
					pdf.AddPage()
					yPos = topMargin
				}
			}

			yPos += 5
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
