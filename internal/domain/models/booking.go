package models

import "fmt"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions is the booking state machine. A pending booking moves to
// confirmed (deferred auto-approval) or cancelled; a confirmed booking can
// still be cancelled by the user; cancelled is terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentUPI    PaymentMethod = "upi"
	PaymentWallet PaymentMethod = "wallet"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCard, PaymentUPI, PaymentWallet:
		return true
	}
	return false
}

// Booking is the central mutable entity. UserID, PNR and TotalCost are fixed
// at creation; only Status changes afterwards.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Route         Route         `json:"route"`
	ReturnRoute   *Route        `json:"returnRoute,omitempty"`
	Passengers    []Passenger   `json:"passengers"`
	TotalCost     int64         `json:"totalCost"`
	Status        BookingStatus `json:"status"`
	BookingDate   string        `json:"bookingDate"`
	BookingTime   string        `json:"bookingTime"`
	PNR           string        `json:"pnr"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, s := range validTransitions[b.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the booking to next or reports why it cannot.
func (b *Booking) TransitionTo(next BookingStatus) error {
	if !b.CanTransitionTo(next) {
		return fmt.Errorf("invalid status transition from %s to %s", b.Status, next)
	}
	b.Status = next
	return nil
}

// BookingDraft is the not-yet-persisted form data for a booking, before the
// store assigns ownership, id and PNR. Contact fields are validated but not
// carried onto the stored booking.
type BookingDraft struct {
	Route         Route         `json:"route"`
	ReturnRoute   *Route        `json:"returnRoute,omitempty"`
	Passengers    []Passenger   `json:"passengers"`
	ContactEmail  string        `json:"contactEmail"`
	ContactPhone  string        `json:"contactPhone"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// TotalCost is (outbound + optional return) price per head, once per
// passenger. Computed at creation and never recomputed afterwards.
func (d BookingDraft) TotalCost() int64 {
	perHead := d.Route.Price
	if d.ReturnRoute != nil {
		perHead += d.ReturnRoute.Price
	}
	return perHead * int64(len(d.Passengers))
}
