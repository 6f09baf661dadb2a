package models

import "testing"

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, c := range cases {
		b := Booking{Status: c.from}
		err := b.TransitionTo(c.to)
		if c.ok && err != nil {
			t.Fatalf("%s -> %s should be allowed, got %v", c.from, c.to, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%s -> %s should be rejected", c.from, c.to)
		}
	}
}

func TestDraftTotalCost(t *testing.T) {
	three := []Passenger{{Name: "a", Age: 20}, {Name: "b", Age: 30}, {Name: "c", Age: 40}}

	oneWay := BookingDraft{Route: Route{Price: 1000}, Passengers: three}
	if got := oneWay.TotalCost(); got != 3000 {
		t.Fatalf("one-way total = %d, want 3000", got)
	}

	ret := Route{Price: 700}
	roundTrip := BookingDraft{Route: Route{Price: 1000}, ReturnRoute: &ret, Passengers: three}
	if got := roundTrip.TotalCost(); got != 5100 {
		t.Fatalf("round-trip total = %d, want 5100", got)
	}
}
