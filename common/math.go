package common

import (
	"math"
	"unsafe"
)

// Matrix functions in this file operate on flat 16-element float64 slices in
// column-major order (OpenGL/WebGPU convention). Destination slices may alias
// the source slice unless a function documents otherwise; when dest and src
// differ, every element not produced by the operation is copied verbatim so
// the destination is a complete, independent matrix afterward.

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float64) {
	for i := range 16 {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Translate right-multiplies m by a translation of vector v and stores the
// result in dest. Only the translation column (elements 12-15) is recomputed;
// when dest and m differ the rotation/scale elements 0-11 are copied over so
// dest is a full matrix. dest may alias m for an in-place translate.
//
// Parameters:
//   - dest: destination slice (must be at least 16 elements, may alias m)
//   - m: source matrix (16 elements, column-major)
//   - v: translation vector (x, y, z)
func Translate(dest, m []float64, v [3]float64) {
	x, y, z := v[0], v[1], v[2]

	t12 := m[0]*x + m[4]*y + m[8]*z + m[12]
	t13 := m[1]*x + m[5]*y + m[9]*z + m[13]
	t14 := m[2]*x + m[6]*y + m[10]*z + m[14]
	t15 := m[3]*x + m[7]*y + m[11]*z + m[15]

	if &dest[0] != &m[0] {
		copy(dest[:12], m[:12])
	}
	dest[12], dest[13], dest[14], dest[15] = t12, t13, t14, t15
}

// Rotate right-multiplies m by a rotation of angle radians about axis and
// stores the result in dest. The axis is normalized internally (Rodrigues'
// rotation). The translation column (elements 12-15) is preserved unchanged;
// when dest and m differ it is copied over. dest may alias m.
//
// If the axis has zero length the rotation cannot be built and dest is left
// unchanged; callers must check the return value before using the result.
//
// Parameters:
//   - dest: destination slice (must be at least 16 elements, may alias m)
//   - m: source matrix (16 elements, column-major)
//   - angle: rotation angle in radians
//   - axis: rotation axis (need not be pre-normalized)
//
// Returns:
//   - bool: true if the rotation was applied, false for a zero-length axis
func Rotate(dest, m []float64, angle float64, axis [3]float64) bool {
	x, y, z := axis[0], axis[1], axis[2]
	length := math.Sqrt(x*x + y*y + z*z)
	if length < 1e-12 {
		return false
	}
	x /= length
	y /= length
	z /= length

	s := math.Sin(angle)
	c := math.Cos(angle)
	t := 1 - c

	// Cache the upper 3x4 block so dest can alias m.
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]

	// Column-major rotation matrix components.
	b00, b01, b02 := x*x*t+c, y*x*t+z*s, z*x*t-y*s
	b10, b11, b12 := x*y*t-z*s, y*y*t+c, z*y*t+x*s
	b20, b21, b22 := x*z*t+y*s, y*z*t-x*s, z*z*t+c

	dest[0] = a00*b00 + a10*b01 + a20*b02
	dest[1] = a01*b00 + a11*b01 + a21*b02
	dest[2] = a02*b00 + a12*b01 + a22*b02
	dest[3] = a03*b00 + a13*b01 + a23*b02
	dest[4] = a00*b10 + a10*b11 + a20*b12
	dest[5] = a01*b10 + a11*b11 + a21*b12
	dest[6] = a02*b10 + a12*b11 + a22*b12
	dest[7] = a03*b10 + a13*b11 + a23*b12
	dest[8] = a00*b20 + a10*b21 + a20*b22
	dest[9] = a01*b20 + a11*b21 + a21*b22
	dest[10] = a02*b20 + a12*b21 + a22*b22
	dest[11] = a03*b20 + a13*b21 + a23*b22

	if &dest[0] != &m[0] {
		copy(dest[12:16], m[12:16])
	}
	return true
}

// Mul4 multiplies two 4x4 matrices and stores the result in dest.
// Result: dest = a * b. All source elements are read into a local buffer
// before writing, so dest may alias either input.
//
// Parameters:
//   - dest: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(dest, a, b []float64) {
	var buf [16]float64
	for i := range 4 { // column of B
		for j := range 4 { // row of A
			sum := 0.0
			for k := range 4 {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(dest, buf[:])
}

// Invert4 computes the inverse of a 4x4 column-major matrix using the Laplace
// expansion (cofactor) method. If the matrix is singular (determinant == 0)
// dest is left unchanged and the function returns false; callers must check
// the result and must not use dest on failure.
//
// Parameters:
//   - dest: destination slice (must be at least 16 elements, may alias m)
//   - m: source matrix (16 elements, column-major)
//
// Returns:
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(dest, m []float64) bool {
	// 2x2 sub-determinants of the upper-left and lower-right quadrants.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return false
	}

	invDet := 1.0 / det

	var out [16]float64
	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet

	copy(dest, out[:])
	return true
}

// Clamp limits v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float64: the clamped value
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ClampRange limits v to the symmetric range [-r, r].
//
// Parameters:
//   - v: value to clamp
//   - r: half-width of the allowed range (must be >= 0)
//
// Returns:
//   - float64: the clamped value
func ClampRange(v, r float64) float64 {
	return Clamp(v, -r, r)
}

// Normalize3 normalizes a 3-vector in place. A zero-length vector is left
// unchanged and reported via the return value.
//
// Parameters:
//   - v: pointer to the vector to normalize
//
// Returns:
//   - bool: true if the vector was normalized, false for zero length
func Normalize3(v *[3]float64) bool {
	length := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if length < 1e-12 {
		return false
	}
	v[0] /= length
	v[1] /= length
	v[2] /= length
	return true
}

// IsZero3 reports whether all components of a 3-vector are exactly zero.
//
// Parameters:
//   - v: the vector to test
//
// Returns:
//   - bool: true if every component is 0.0
func IsZero3(v [3]float64) bool {
	return v[0] == 0.0 && v[1] == 0.0 && v[2] == 0.0
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}
