package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"

	"github.com/google/uuid"
)

// BookingService manages the per-user view over the shared all-bookings
// collection and drives the pending -> confirmed / cancelled lifecycle.
// Every status change goes through Store.Update on the collection key, so
// the deferred confirmation and a user cancel cannot lose each other's
// write even when they fire near-simultaneously.
type BookingService struct {
	store     repositories.Store
	sessions  *SessionService
	scheduler *ConfirmScheduler
}

func NewBookingService(store repositories.Store, sessions *SessionService, scheduler *ConfirmScheduler) *BookingService {
	return &BookingService{store: store, sessions: sessions, scheduler: scheduler}
}

// ListBookings returns the current user's bookings in the insertion order of
// the shared collection. Without a session it returns an empty list, not an
// error: an anonymous visitor simply has no tickets.
func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return []models.Booking{}, nil
	}
	all, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Booking{}
	for _, b := range all {
		if b.UserID == user.ID {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetBooking returns one booking, scoped to the owning user.
func (s *BookingService) GetBooking(ctx context.Context, id string) (models.Booking, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return models.Booking{}, domain.UnauthorizedError{Reason: "no active session"}
	}
	all, err := s.readAll(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	for _, b := range all {
		if b.ID == id && b.UserID == user.ID {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// CreateBooking takes ownership of a draft: assigns the current user, id,
// PNR and timestamps, fixes the total cost, appends the booking to the
// shared collection with status pending and arms its auto-confirmation.
func (s *BookingService) CreateBooking(ctx context.Context, draft models.BookingDraft) (models.Booking, error) {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return models.Booking{}, domain.UnauthorizedError{Reason: "no active session"}
	}
	if err := validateDraft(draft); err != nil {
		return models.Booking{}, err
	}

	now := time.Now()
	booking := models.Booking{
		ID:            "booking-" + uuid.NewString(),
		UserID:        user.ID,
		Route:         draft.Route,
		ReturnRoute:   draft.ReturnRoute,
		Passengers:    withPassengerIDs(draft.Passengers),
		TotalCost:     draft.TotalCost(),
		Status:        models.StatusPending,
		BookingDate:   utils.FormatDate(now),
		BookingTime:   utils.FormatClock(now),
		PNR:           newPNR(),
		PaymentMethod: draft.PaymentMethod,
	}

	err := s.store.Update(ctx, repositories.KeyAllBookings, func(current []byte) ([]byte, error) {
		all, err := decodeBookings(current)
		if err != nil {
			return nil, err
		}
		return json.Marshal(append(all, booking))
	})
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "persist booking", Err: err}
	}

	s.scheduler.Schedule(booking.ID, func() { s.autoConfirm(booking.ID) })

	utils.LogEvent("", "booking", "create", fmt.Sprintf("booking_id=%s pnr=%s total=%d", booking.ID, booking.PNR, booking.TotalCost))
	return booking, nil
}

// CancelBooking moves a booking owned by the current user to cancelled.
// Cancelling twice is a no-op; cancelling a confirmed booking is allowed.
func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	user, ok := s.sessions.CurrentUser()
	if !ok {
		return domain.UnauthorizedError{Reason: "no active session"}
	}

	err := s.updateStatus(ctx, id, user.ID, func(b *models.Booking) error {
		if b.Status == models.StatusCancelled {
			return nil
		}
		return b.TransitionTo(models.StatusCancelled)
	})
	if err != nil {
		return err
	}

	s.scheduler.Cancel(id)
	utils.LogEvent("", "booking", "cancel", "booking_id="+id)
	return nil
}

// autoConfirm is the deferred-confirmation callback. It re-checks status
// inside the store's per-key critical section: only a still-pending booking
// moves to confirmed, a cancel that won the race stays cancelled.
func (s *BookingService) autoConfirm(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.updateStatus(ctx, id, "", func(b *models.Booking) error {
		if b.Status != models.StatusPending {
			return nil
		}
		return b.TransitionTo(models.StatusConfirmed)
	})
	if err != nil {
		utils.LogEvent("", "booking", "auto_confirm_failed", fmt.Sprintf("booking_id=%s err=%v", id, err))
		return
	}
	utils.LogEvent("", "booking", "auto_confirm", "booking_id="+id)
}

// updateStatus is the shared primitive behind cancel and auto-confirm: it
// rewrites the single matching record of the shared collection under the
// store's per-key lock. An empty userID skips the ownership check (internal
// callers only).
func (s *BookingService) updateStatus(ctx context.Context, id, userID string, apply func(*models.Booking) error) error {
	return s.store.Update(ctx, repositories.KeyAllBookings, func(current []byte) ([]byte, error) {
		all, err := decodeBookings(current)
		if err != nil {
			return nil, err
		}
		for i := range all {
			if all[i].ID != id {
				continue
			}
			if userID != "" && all[i].UserID != userID {
				continue
			}
			if err := apply(&all[i]); err != nil {
				return nil, domain.ConflictError{Resource: "booking", Msg: err.Error()}
			}
			return json.Marshal(all)
		}
		return nil, domain.NotFoundError{Resource: "booking"}
	})
}

func (s *BookingService) readAll(ctx context.Context) ([]models.Booking, error) {
	raw, err := s.store.Read(ctx, repositories.KeyAllBookings)
	if err != nil {
		return nil, domain.InternalError{Msg: "read bookings", Err: err}
	}
	all, err := decodeBookings(raw)
	if err != nil {
		return nil, domain.InternalError{Msg: "decode bookings", Err: err}
	}
	return all, nil
}

func decodeBookings(raw []byte) ([]models.Booking, error) {
	if len(raw) == 0 {
		return []models.Booking{}, nil
	}
	var all []models.Booking
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func validateDraft(d models.BookingDraft) error {
	if d.Route.ID == "" {
		return domain.ValidationError{Field: "route", Msg: "required"}
	}
	if d.Route.Price <= 0 {
		return domain.ValidationError{Field: "route.price", Msg: "must be positive"}
	}
	if d.ReturnRoute != nil && d.ReturnRoute.Price <= 0 {
		return domain.ValidationError{Field: "returnRoute.price", Msg: "must be positive"}
	}
	if len(d.Passengers) == 0 {
		return domain.ValidationError{Field: "passengers", Msg: "at least one passenger required"}
	}
	for i, p := range d.Passengers {
		if utils.TrimOrEmpty(p.Name) == "" {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].name", i), Msg: "required"}
		}
		if p.Age < 1 || p.Age > 100 {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].age", i), Msg: "must be between 1 and 100"}
		}
		if !p.Gender.Valid() {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].gender", i), Msg: "must be male, female or other"}
		}
	}
	if !d.PaymentMethod.Valid() {
		return domain.ValidationError{Field: "paymentMethod", Msg: "must be card, upi or wallet"}
	}
	return nil
}

func withPassengerIDs(in []models.Passenger) []models.Passenger {
	out := make([]models.Passenger, len(in))
	copy(out, in)
	for i := range out {
		out[i].Name = utils.NormalizeSpace(out[i].Name)
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}

const pnrAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newPNR builds the record locator: "PNR" plus nine base36 characters.
func newPNR() string {
	var b strings.Builder
	b.WriteString("PNR")
	for i := 0; i < 9; i++ {
		b.WriteByte(pnrAlphabet[rand.Intn(len(pnrAlphabet))])
	}
	return b.String()
}
