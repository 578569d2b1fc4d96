package aes

import (
	"encoding/binary"
	"fmt"

	"github.com/ericlagergren/subtle"
)

// Uint128 is a 128-bit value and an element of GF(2^128).
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128FromBytes reads b in little-endian order.
func Uint128FromBytes(b Block) Uint128 {
	return Uint128{
		Hi: binary.LittleEndian.Uint64(b[8:16]),
		Lo: binary.LittleEndian.Uint64(b[0:8]),
	}
}

// Bytes returns x in little-endian order.
func (x Uint128) Bytes() Block {
	var b Block
	binary.LittleEndian.PutUint64(b[0:8], x.Lo)
	binary.LittleEndian.PutUint64(b[8:16], x.Hi)
	return b
}

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo}
}

// Double multiplies x by the generator of GF(2^128) modulo
// x^128 + x^7 + x^2 + x + 1.
func (x Uint128) Double() Uint128 {
	// 0 or all ones, depending on the bit shifted out.
	mask := -(x.Hi >> 63)
	return Uint128{
		Hi: x.Hi<<1 | x.Lo>>63,
		Lo: x.Lo<<1 ^ (0x87 & mask),
	}
}

// Equal reports whether x == y in constant time.
func (x Uint128) Equal(y Uint128) bool {
	a, b := x.Bytes(), y.Bytes()
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

func (x Uint128) String() string {
	return fmt.Sprintf("{%#0.16x %#0.16x}", x.Hi, x.Lo)
}
