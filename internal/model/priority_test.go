package model

import "testing"

func TestPriorityString(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{PriorityHigh, "High"},
		{PriorityMedium, "Medium"},
		{PriorityLow, "Low"},
		{0, "Unknown"},
		{4, "Unknown"},
		{-1, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.priority.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.priority, got, tt.want)
		}
	}
}

func TestPriorityValid(t *testing.T) {
	for p := Priority(-1); p <= 5; p++ {
		want := p >= PriorityHigh && p <= PriorityLow
		if got := p.Valid(); got != want {
			t.Errorf("Priority(%d).Valid() = %v, want %v", p, got, want)
		}
	}
}

func TestPriorityName(t *testing.T) {
	if got := PriorityName(nil); got != "N/A" {
		t.Errorf("nil priority renders %q, want N/A", got)
	}
	p := PriorityHigh
	if got := PriorityName(&p); got != "High" {
		t.Errorf("high priority renders %q", got)
	}
	unknown := Priority(9)
	if got := PriorityName(&unknown); got != "Unknown" {
		t.Errorf("out-of-range priority renders %q, want Unknown", got)
	}
}
