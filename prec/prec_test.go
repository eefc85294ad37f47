package prec

import (
	"math"
	"testing"
)

func TestAlmostEq(t *testing.T) {
	cases := []struct {
		a, b, acc float64
		want      bool
	}{
		{1.0, 1.0, 1e-15, true},
		{1.0, 1.0 + 1e-16, 1e-15, true},
		{1.0, 1.0 + 1e-10, 1e-15, false},
		{math.Inf(1), math.Inf(1), 1e-15, true},
		{math.Inf(1), math.Inf(-1), 1e300, false},
		{math.Inf(1), 1e308, 1e300, false},
		{math.NaN(), math.NaN(), 1e-15, false},
		{0.0, 0.0, 0.0, true},
	}
	for _, c := range cases {
		if got := AlmostEq(c.a, c.b, c.acc); got != c.want {
			t.Errorf("AlmostEq(%v, %v, %v) = %v, want %v", c.a, c.b, c.acc, got, c.want)
		}
	}
}

func TestDefaultAcc(t *testing.T) {
	if !AlmostEq(1.0, 1.0+1e-14, DefaultAcc) {
		t.Error("values 1e-14 apart should compare equal at the default accuracy")
	}
	if AlmostEq(1.0, 1.0+1e-12, DefaultAcc) {
		t.Error("values 1e-12 apart should not compare equal at the default accuracy")
	}
}

func TestRelEq(t *testing.T) {
	if !RelEq(1e10, 1e10+1, 8) {
		t.Error("large values within 8 digits should compare equal")
	}
	if RelEq(1e10, 1e10+1e4, 8) {
		t.Error("1e4 apart at 1e10 is not 8 digits of agreement")
	}
	if !RelEq(math.Inf(-1), math.Inf(-1), 15) {
		t.Error("equal infinities should compare equal")
	}
}
