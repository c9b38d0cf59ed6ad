// Package export renders the itinerary for sharing.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/idilsaglam/trip/internal/countdown"
	"github.com/idilsaglam/trip/internal/itinerary"
	"github.com/idilsaglam/trip/internal/model"
)

// WritePDF renders one section per day with its weather and activities.
func WritePDF(w io.Writer, groups []itinerary.DayGroup, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(model.TripTitle, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(model.TripTitle))
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, tr(model.TripDates+" · "+model.HomeAddress))
	pdf.Ln(6)
	if c, ok := countdown.Remaining(now, model.TripStart); ok {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%d dager igjen", c.Days)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, g := range groups {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s – %s", g.Day.Label, g.Day.Subtitle)))
		pdf.Ln(7)

		if g.HasWeather {
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(0, 6, tr(fmt.Sprintf("%s, %d°/%d°, regn %d%%, vind %d km/t",
				g.Weather.Desc, g.Weather.High, g.Weather.Low, g.Weather.Rain, g.Weather.WindKm)))
			pdf.Ln(6)
		}

		pdf.SetFont("Arial", "", 12)
		if len(g.Activities) == 0 {
			pdf.Cell(0, 7, tr("  Ingen planer ennå"))
			pdf.Ln(7)
		}
		for _, a := range g.Activities {
			when := "     "
			if a.Time != "" {
				when = a.Time
			}
			pdf.SetFont("Arial", "B", 12)
			pdf.Cell(0, 7, tr(fmt.Sprintf("  %s  %s", when, a.Name)))
			pdf.Ln(6)
			pdf.SetFont("Arial", "", 10)
			if a.Description != "" {
				pdf.MultiCell(0, 5, tr("         "+a.Description), "", "", false)
			}
			if a.Location != "" {
				pdf.MultiCell(0, 5, tr("         Sted: "+a.Location), "", "", false)
			}
			pdf.Ln(1)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
