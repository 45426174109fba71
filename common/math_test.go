package common

import (
	"math"
	"testing"
)

func matsEqual(t *testing.T, got, want []float64, tolerance float64) {
	t.Helper()
	for i := range 16 {
		if math.Abs(got[i]-want[i]) > tolerance {
			t.Fatalf("element %d: got %v, want %v (tolerance %v)", i, got[i], want[i], tolerance)
		}
	}
}

func identityMat() []float64 {
	m := make([]float64, 16)
	Identity(m)
	return m
}

func TestIdentityInverse(t *testing.T) {
	inv := make([]float64, 16)
	if !Invert4(inv, identityMat()) {
		t.Fatal("identity reported as singular")
	}
	matsEqual(t, inv, identityMat(), 0)
}

func TestInverseRoundTrip(t *testing.T) {
	m := identityMat()
	if !Rotate(m, m, 0.7, [3]float64{0.3, 1, -0.2}) {
		t.Fatal("rotate failed on a non-zero axis")
	}
	Translate(m, m, [3]float64{4, -2.5, 13})
	if !Rotate(m, m, -1.2, [3]float64{1, 0, 1}) {
		t.Fatal("rotate failed on a non-zero axis")
	}

	inv := make([]float64, 16)
	if !Invert4(inv, m) {
		t.Fatal("invertible matrix reported as singular")
	}

	product := make([]float64, 16)
	Mul4(product, inv, m)
	matsEqual(t, product, identityMat(), 1e-9)
}

func TestInvertSingular(t *testing.T) {
	m := make([]float64, 16) // all zeros, determinant 0
	dest := identityMat()
	if Invert4(dest, m) {
		t.Fatal("zero matrix reported as invertible")
	}
	matsEqual(t, dest, identityMat(), 0)
}

func TestRotateZeroAxisFails(t *testing.T) {
	m := identityMat()
	dest := identityMat()
	dest[12] = 99 // sentinel to prove dest is untouched
	if Rotate(dest, m, 1.0, [3]float64{0, 0, 0}) {
		t.Fatal("zero-length axis reported as rotatable")
	}
	if dest[12] != 99 {
		t.Fatal("dest modified on failed rotate")
	}
}

func TestRotateQuarterTurnAboutZ(t *testing.T) {
	m := identityMat()
	dest := make([]float64, 16)
	if !Rotate(dest, m, math.Pi/2, [3]float64{0, 0, 1}) {
		t.Fatal("rotate failed")
	}
	// The X basis vector lands on Y.
	want := []float64{0, 1, 0, 0, -1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	matsEqual(t, dest, want, 1e-12)
}

func TestTranslateMatchesFullMultiply(t *testing.T) {
	m := identityMat()
	Rotate(m, m, 0.9, [3]float64{1, 2, 3})
	v := [3]float64{5, -7, 2}

	viaTranslate := make([]float64, 16)
	Translate(viaTranslate, m, v)

	translation := identityMat()
	translation[12], translation[13], translation[14] = v[0], v[1], v[2]
	viaMultiply := make([]float64, 16)
	Mul4(viaMultiply, m, translation)

	matsEqual(t, viaTranslate, viaMultiply, 1e-12)
}

func TestTranslateCopiesUntouchedElements(t *testing.T) {
	m := identityMat()
	Rotate(m, m, 0.4, [3]float64{0, 1, 0})

	dest := make([]float64, 16) // zeroed, not a matrix
	Translate(dest, m, [3]float64{1, 2, 3})

	for i := range 12 {
		if dest[i] != m[i] {
			t.Fatalf("element %d not copied: got %v, want %v", i, dest[i], m[i])
		}
	}
}

func TestRotatePreservesTranslation(t *testing.T) {
	m := identityMat()
	Translate(m, m, [3]float64{10, 20, 30})

	dest := make([]float64, 16)
	if !Rotate(dest, m, 1.1, [3]float64{0, 1, 0}) {
		t.Fatal("rotate failed")
	}
	for i := 12; i < 16; i++ {
		if dest[i] != m[i] {
			t.Fatalf("translation element %d changed: got %v, want %v", i, dest[i], m[i])
		}
	}
}

func TestMul4Aliasing(t *testing.T) {
	a := identityMat()
	Rotate(a, a, 0.5, [3]float64{1, 0, 0})
	b := identityMat()
	Translate(b, b, [3]float64{1, 2, 3})

	want := make([]float64, 16)
	Mul4(want, a, b)

	aliased := make([]float64, 16)
	copy(aliased, a)
	Mul4(aliased, aliased, b)
	matsEqual(t, aliased, want, 0)
}

func TestClampRange(t *testing.T) {
	if got := ClampRange(5, 2); got != 2 {
		t.Fatalf("got %v, want 2", got)
	}
	if got := ClampRange(-5, 2); got != -2 {
		t.Fatalf("got %v, want -2", got)
	}
	if got := ClampRange(1.5, 2); got != 1.5 {
		t.Fatalf("got %v, want 1.5", got)
	}
}

func TestNormalize3(t *testing.T) {
	v := [3]float64{3, 0, 4}
	if !Normalize3(&v) {
		t.Fatal("normalize failed on a non-zero vector")
	}
	if math.Abs(v[0]-0.6) > 1e-12 || v[1] != 0 || math.Abs(v[2]-0.8) > 1e-12 {
		t.Fatalf("unexpected normalized vector: %v", v)
	}

	zero := [3]float64{}
	if Normalize3(&zero) {
		t.Fatal("zero vector reported as normalizable")
	}
}
