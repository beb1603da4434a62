// Package pdfgen renders a client-facing trip itinerary as a PDF. The layout
// is branded with the agency profile: header bar in the agency's primary
// color, agency name and contact details in the footer.
package pdfgen

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/travelflow/tripflow/internal/domain"
)

// Itinerary renders the trip as a one-or-more page A4 document and returns
// the raw PDF bytes.
func Itinerary(trip *domain.Trip, agency domain.AgencyProfile, rates map[string]float64) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	red, green, blue := hexToRGB(agency.PrimaryColor)

	// core fonts are cp1252; translate currency symbols and accents
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// header bar
	pdf.SetFillColor(red, green, blue)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, tr(agency.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(red, green, blue)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	title := trip.TripName
	if title == "" {
		title = "Untitled Trip"
	}
	row("Trip", title)
	row("Client", trip.ClientName)
	if days := trip.DurationDays(); days > 0 {
		row("Duration", fmt.Sprintf("%d days", days))
	}
	if trip.Travelers > 0 {
		row("Travelers", strconv.Itoa(trip.Travelers))
	}
	row("Prepared", time.Now().UTC().Format("02 Jan 2006"))
	pdf.Ln(4)

	if len(trip.Stops) > 0 {
		sectionHeader("Route")
		for _, stop := range trip.Stops {
			label := fmt.Sprintf("%d. %s", stop.Seq, stop.Place)
			value := dateRange(stop.Start, stop.End)
			if stop.Accommodation != "" {
				value += "  -  " + stop.Accommodation
			}
			row(label, value)
		}
		pdf.Ln(4)
	}

	if len(trip.Flights) > 0 {
		sectionHeader("Flights")
		for _, f := range trip.Flights {
			label := f.Airline + " " + f.FlightNumber
			value := f.From + " to " + f.To
			if dur := f.Duration(); dur != "" {
				value += " (" + dur + ")"
			}
			row(label, value)
		}
		pdf.Ln(4)
	}

	sectionHeader("Budget")
	total := trip.TotalCost(rates)
	row("Planned cost", domain.FormatCost(total, trip.HomeCurrency))
	if trip.TotalBudget > 0 {
		row("Budget", domain.FormatCost(trip.TotalBudget, trip.HomeCurrency))

		pdf.SetFillColor(red, green, blue)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(55, 9, "BUDGET USED", "", 0, "L", true, 0, "")
		pdf.CellFormat(115, 9, fmt.Sprintf("%.0f%%", trip.BudgetProgress(rates)), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	if trip.AgencyNotes != "" {
		sectionHeader("Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, tr(trip.AgencyNotes), "", "L", false)
		pdf.Ln(4)
	}

	// footer
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	footer := agency.Name
	if agency.Email != "" {
		footer += "  ·  " + agency.Email
	}
	if agency.Website != "" {
		footer += "  ·  " + agency.Website
	}
	pdf.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfgen.Itinerary: %w", err)
	}
	return buf.Bytes(), nil
}

func dateRange(start, end string) string {
	if start == "" {
		return "dates TBC"
	}
	if end == "" || end == start {
		return readableDate(start)
	}
	return readableDate(start) + " to " + readableDate(end)
}

func readableDate(iso string) string {
	t, err := time.Parse(domain.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006")
}

// hexToRGB parses a #rrggbb color, falling back to the default brand color
// on malformed input.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		hex = domain.DefaultAgency().PrimaryColor
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 0)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 0)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 79, 70, 229
	}
	return int(r), int(g), int(b)
}
