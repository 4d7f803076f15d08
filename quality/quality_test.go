package quality

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 0, 1, 0.5},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v,%v,%v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestContrastUniformImageIsZero(t *testing.T) {
	a := New()
	w, h := 16, 16
	buf := make([]byte, w*h)
	for i := range buf {
		buf[i] = 128
	}
	got, err := a.Contrast(buf, w, h)
	if err != nil {
		t.Fatalf("Contrast: %v", err)
	}
	if got != 0 {
		t.Fatalf("Contrast of uniform image = %v, want 0", got)
	}
}

func TestContrastInRange(t *testing.T) {
	a := New()
	w, h := 8, 8
	buf := make([]byte, w*h)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 0
		} else {
			buf[i] = 255
		}
	}
	got, err := a.Contrast(buf, w, h)
	if err != nil {
		t.Fatalf("Contrast: %v", err)
	}
	if got < 0 || got > 1 {
		t.Fatalf("Contrast = %v, want in [0,1]", got)
	}
}

func TestLaplacianVarianceUniformImageIsZero(t *testing.T) {
	a := New()
	w, h := 16, 16
	buf := make([]byte, w*h)
	for i := range buf {
		buf[i] = 200
	}
	got, err := a.LaplacianVariance(buf, w, h)
	if err != nil {
		t.Fatalf("LaplacianVariance: %v", err)
	}
	if got != 0 {
		t.Fatalf("LaplacianVariance of uniform image = %v, want 0", got)
	}
}

func TestLaplacianVarianceNonNegative(t *testing.T) {
	a := New()
	w, h := 12, 12
	buf := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				buf[y*w+x] = 0
			} else {
				buf[y*w+x] = 255
			}
		}
	}
	got, err := a.LaplacianVariance(buf, w, h)
	if err != nil {
		t.Fatalf("LaplacianVariance: %v", err)
	}
	if got < 0 {
		t.Fatalf("LaplacianVariance = %v, want >= 0", got)
	}
}

func TestAnalyzerRejectsUndersizedBuffer(t *testing.T) {
	a := New()
	if _, err := a.Contrast([]byte{1, 2, 3}, 4, 4); err == nil {
		t.Fatalf("Contrast: expected error for undersized buffer")
	}
	if _, err := a.LaplacianVariance([]byte{1, 2, 3}, 4, 4); err == nil {
		t.Fatalf("LaplacianVariance: expected error for undersized buffer")
	}
}
