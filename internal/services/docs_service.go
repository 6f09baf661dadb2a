package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"travelapp/internal/domain/models"
	"travelapp/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the e-ticket PDF for a booking.
type DocsService struct {
	Bookings  *BookingService
	RequestID string

	// Loader overrides booking lookup in tests.
	Loader func(ctx context.Context, id string) (models.Booking, error)
}

func (s DocsService) GenerateETicket(ctx context.Context, bookingID string) ([]byte, string, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+bookingID)
	return buildETicketPDF(b)
}

func (s DocsService) loadBooking(ctx context.Context, id string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Bookings.GetBooking(ctx, id)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR           : %s", b.PNR),
		fmt.Sprintf("Status        : %s", strings.ToUpper(string(b.Status))),
		fmt.Sprintf("Route         : %s (%s) -> %s (%s)", b.Route.From.Name, b.Route.From.Code, b.Route.To.Name, b.Route.To.Code),
		fmt.Sprintf("Service       : %s %s", b.Route.Provider, b.Route.Mode),
		fmt.Sprintf("Departure     : %s (%s)", b.Route.DepartureTime, b.Route.Duration),
		fmt.Sprintf("Booked        : %s %s", b.BookingDate, b.BookingTime),
		fmt.Sprintf("Payment       : %s", b.PaymentMethod),
	}
	if b.ReturnRoute != nil {
		lines = append(lines,
			fmt.Sprintf("Return        : %s (%s) -> %s (%s), dep %s",
				b.ReturnRoute.From.Name, b.ReturnRoute.From.Code,
				b.ReturnRoute.To.Name, b.ReturnRoute.To.Code,
				b.ReturnRoute.DepartureTime))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range b.Passengers {
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s, %d, %s", i+1, p.Name, p.Age, p.Gender))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatINR(b.TotalCost))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Carry a valid photo ID for every passenger. This e-ticket covers all passengers listed above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", b.PNR)
	return buf.Bytes(), filename, nil
}
