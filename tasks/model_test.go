package tasks

import "testing"

func TestKindEnabled(t *testing.T) {
	enabled := map[Kind]bool{
		KindShelter:   true,
		KindTransport: true,
		KindVolunteer: false,
		KindQuestion:  false,
		KindOther:     false,
	}
	for kind, want := range enabled {
		if got := kind.Enabled(); got != want {
			t.Errorf("Kind(%s).Enabled() = %v, want %v", kind, got, want)
		}
	}
	if Kind("BANANA").Valid() {
		t.Error("unknown kind reported as valid")
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusUnassigned, StatusAssigned, true},
		{StatusAssigned, StatusClosed, true},
		{StatusUnassigned, StatusClosed, false},
		{StatusAssigned, StatusUnassigned, false},
		{StatusClosed, StatusAssigned, false},
		{StatusClosed, StatusUnassigned, false},
		{StatusUnassigned, StatusUnassigned, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.ok {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestStatusOpen(t *testing.T) {
	if !StatusUnassigned.Open() || !StatusAssigned.Open() {
		t.Error("unassigned and assigned must be open")
	}
	if StatusClosed.Open() {
		t.Error("closed must not be open")
	}
}
