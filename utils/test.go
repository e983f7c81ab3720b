package utils

import (
	"math"
	"testing"
)

func AssertTrue(t *testing.T, a bool) {
	t.Helper()
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

// AssertClose fails unless |a - b| <= tol.
func AssertClose(t *testing.T, a, b, tol float64) {
	t.Helper()
	if math.Abs(a-b) > tol {
		t.Fatalf("Expected %v within %v of %v\n", a, tol, b)
	}
}

// AssertPtrClose fails unless a is non-nil and within tol of b.
func AssertPtrClose(t *testing.T, a *float64, b, tol float64) {
	t.Helper()
	if a == nil {
		t.Fatalf("Expected %v, got nil\n", b)
	}
	AssertClose(t, *a, b, tol)
}
