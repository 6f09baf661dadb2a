package services

import (
	"context"
	"testing"

	"travelapp/internal/domain/models"
)

func TestDocsServiceGenerateETicket(t *testing.T) {
	loader := func(ctx context.Context, id string) (models.Booking, error) {
		ret := models.Route{
			From: models.Location{Name: "Delhi", Code: "DEL"},
			To:   models.Location{Name: "Mumbai", Code: "MUM"},
			Mode: models.ModeFlight, Provider: "Vistara",
			DepartureTime: "18:45", Duration: "2h 30m", Price: 4200,
		}
		return models.Booking{
			ID:     id,
			UserID: "user-1",
			Route: models.Route{
				From: models.Location{Name: "Mumbai", Code: "MUM"},
				To:   models.Location{Name: "Delhi", Code: "DEL"},
				Mode: models.ModeFlight, Provider: "IndiGo",
				DepartureTime: "06:00", Duration: "2h 30m", Price: 5000,
			},
			ReturnRoute: &ret,
			Passengers: []models.Passenger{
				{ID: "p1", Name: "Asha", Age: 31, Gender: models.GenderFemale},
				{ID: "p2", Name: "Ravi", Age: 33, Gender: models.GenderMale},
			},
			TotalCost:     18400,
			Status:        models.StatusConfirmed,
			BookingDate:   "2026-08-31",
			BookingTime:   "10:15:00",
			PNR:           "PNRABC123XYZ",
			PaymentMethod: models.PaymentCard,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket(context.Background(), "booking-1")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if filename != "ETICKET_PNRABC123XYZ.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}
