package fix

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFromInt(t *testing.T) {
	tests := []struct {
		in   int
		want fixed.Int52_12
	}{
		{0, 0},
		{1, One},
		{16, 16 << 12},
		{-3, -3 << 12},
	}
	for _, tt := range tests {
		if got := FromInt(tt.in); got != tt.want {
			t.Errorf("FromInt(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFromFloat(t *testing.T) {
	if got := FromFloat(1.5); got != One+One/2 {
		t.Errorf("FromFloat(1.5): got %d, want %d", got, One+One/2)
	}
	if got := FromFloat(0.25); got != One/4 {
		t.Errorf("FromFloat(0.25): got %d, want %d", got, One/4)
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		in   fixed.Int52_12
		want int
	}{
		{0, 0},
		{One - 1, 0},
		{One, 1},
		{FromFloat(2.999), 2},
		{FromFloat(-0.5), -1}, // floor, not truncation
	}
	for _, tt := range tests {
		if got := Floor(tt.in); got != tt.want {
			t.Errorf("Floor(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStepNeverOvershoots(t *testing.T) {
	spans := []int{1, 3, 7, 16, 100, 319}
	for _, span := range spans {
		for _, n := range []int{1, 2, 5, 16, 240} {
			step := Step(FromInt(span), n)
			var pos fixed.Int52_12
			for i := 0; i < n; i++ {
				pos += step
			}
			if pos > FromInt(span) {
				t.Errorf("span %d over %d steps overshoots: %d > %d", span, n, pos, FromInt(span))
			}
		}
	}
}

func TestStepExactDivision(t *testing.T) {
	if got := Step(FromInt(16), 4); got != FromInt(4) {
		t.Errorf("Step(16, 4): got %d, want %d", got, FromInt(4))
	}
	if got := Step(FromInt(1), 2); got != One/2 {
		t.Errorf("Step(1, 2): got %d, want %d", got, One/2)
	}
}

func TestVecWalk(t *testing.T) {
	// walk from (0, 0) toward (16, 8) in 16 steps
	v := NewVec(0, 0, 16, 8, 16)
	for i := 0; i < 16; i++ {
		if x := Floor(v.X); x != i {
			t.Fatalf("step %d: x = %d, want %d", i, x, i)
		}
		if y := Floor(v.Y); y != i/2 {
			t.Fatalf("step %d: y = %d, want %d", i, y, i/2)
		}
		v.Advance()
	}
}

func TestVecNegativeDirection(t *testing.T) {
	v := NewVec(8, 0, 0, 0, 8)
	if v.DX >= 0 {
		t.Fatalf("DX: got %d, want negative", v.DX)
	}
	v.Advance()
	if got := Floor(v.X); got != 7 {
		t.Errorf("after one step: x = %d, want 7", got)
	}
}
