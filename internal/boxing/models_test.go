package boxing

import (
	"errors"
	"testing"
)

func TestWeightClassFor(t *testing.T) {
	cases := []struct {
		weight int
		want   string
	}{
		{230, Heavyweight},
		{203, Heavyweight},
		{202, Middleweight},
		{166, Middleweight},
		{165, Lightweight},
		{133, Lightweight},
		{132, Featherweight},
		{125, Featherweight},
	}
	for _, tc := range cases {
		got, err := WeightClassFor(tc.weight)
		if err != nil {
			t.Fatalf("weight %d: unexpected error: %v", tc.weight, err)
		}
		if got != tc.want {
			t.Fatalf("weight %d: expected %s, got %s", tc.weight, tc.want, got)
		}
	}
}

func TestWeightClassFor_BelowMinimum(t *testing.T) {
	if _, err := WeightClassFor(124); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestAfterFind_PopulatesWeightClass(t *testing.T) {
	b := &Boxer{Name: "Joe", Weight: 230}
	if err := b.AfterFind(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.WeightClass != Heavyweight {
		t.Fatalf("expected HEAVYWEIGHT, got %q", b.WeightClass)
	}
}

func TestAfterFind_InvalidWeightLeavesClassEmpty(t *testing.T) {
	b := &Boxer{Name: "Joe", Weight: 100}
	if err := b.AfterFind(nil); err != nil {
		t.Fatalf("expected no error for a legacy row, got %v", err)
	}
	if b.WeightClass != "" {
		t.Fatalf("expected empty weight class, got %q", b.WeightClass)
	}
}
