package wide

// Lanes is the number of lanes in a U16x16, and the number of bytes
// consumed by LoadBytes and produced by StoreBytes.
const Lanes = 16

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
//
// All arithmetic wraps modulo 65536, matching the behavior of packed
// 16-bit integer instructions (SSE2 pmullw/paddw/psubw, NEON mul/add/sub).
type U16x16 [Lanes]uint16

// SplatU16 creates U16x16 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// SplatPixel broadcasts one 4-channel pixel to all four pixel slots of a
// 16-lane block: lanes 0,4,8,12 get c0, lanes 1,5,9,13 get c1 and so on.
func SplatPixel(c0, c1, c2, c3 uint8) U16x16 {
	var result U16x16
	for i := 0; i < Lanes; i += 4 {
		result[i+0] = uint16(c0)
		result[i+1] = uint16(c1)
		result[i+2] = uint16(c2)
		result[i+3] = uint16(c3)
	}
	return result
}

// LoadBytes widens 16 bytes from src into 16 lanes.
// src must have at least 16 bytes.
func LoadBytes(src []byte) U16x16 {
	_ = src[Lanes-1] // bounds check hint
	var result U16x16
	for i := range result {
		result[i] = uint16(src[i])
	}
	return result
}

// StoreBytes narrows the 16 lanes of v into dst, keeping the low byte of
// each lane. dst must have at least 16 bytes.
func StoreBytes(dst []byte, v U16x16) {
	_ = dst[Lanes-1] // bounds check hint
	for i := range v {
		// Intentional truncation - callers shift results into byte range first
		dst[i] = uint8(v[i]) // #nosec G115
	}
}

// Add performs element-wise addition.
// Returns a new U16x16 with v[i] + other[i] for each element.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
// Returns a new U16x16 with v[i] - other[i] for each element.
func (v U16x16) Sub(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication, keeping the low 16 bits of
// each product.
func (v U16x16) Mul(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Shr performs an element-wise logical right shift by n bits.
func (v U16x16) Shr(n uint) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] >> n
	}
	return result
}
