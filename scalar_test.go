package polyroot

import (
	"math"
	"testing"
)

func TestNewtonRaphson(t *testing.T) {
	// x² - 2
	root, ok := newtonRaphson(ascending(1, 0, -2), 1e-12)
	if !ok {
		t.Fatal("no root found")
	}
	if math.Abs(root-math.Sqrt2) > 1e-9 {
		t.Errorf("got %v, want √2", root)
	}

	// x³ - 6x² + 11x - 6; whichever of 1, 2, 3 the iteration lands on, the
	// residual criterion must hold.
	p := ascending(1, -6, 11, -6)
	root, ok = newtonRaphson(p, 1e-12)
	if !ok {
		t.Fatal("no root found")
	}
	if res := math.Abs(evalReal(p, root)); res > 1e-12 {
		t.Errorf("residual %v at %v", res, root)
	}
}

func TestNewtonRaphsonNoRealRoot(t *testing.T) {
	// x² + 1 has no real root; the search must report failure instead of
	// returning a made-up value.
	if root, ok := newtonRaphson(ascending(1, 0, 1), 1e-12); ok {
		t.Errorf("unexpectedly found root %v", root)
	}
}

func TestBisect(t *testing.T) {
	p := ascending(1, 0, -2)
	root, ok := bisect(p, 0, 2, 1e-12)
	if !ok {
		t.Fatal("no root found")
	}
	if math.Abs(root-math.Sqrt2) > 1e-9 {
		t.Errorf("got %v, want √2", root)
	}

	// Descending bracket orientation: f(lo) > 0 > f(hi).
	root, ok = bisect(ascending(-1, 0, 2), 0, 2, 1e-12)
	if !ok {
		t.Fatal("no root found")
	}
	if math.Abs(root-math.Sqrt2) > 1e-9 {
		t.Errorf("got %v, want √2", root)
	}
}

func TestBisectWideBracket(t *testing.T) {
	// The cubic fallback brackets at powers of two times 64; make sure a huge
	// initial bracket still collapses onto the root.
	p := ascending(1, 0, 0, -27)
	root, ok := bisect(p, -4096, 4096, 1e-12)
	if !ok {
		t.Fatal("no root found")
	}
	if math.Abs(root-3) > 1e-9 {
		t.Errorf("got %v, want 3", root)
	}
}
