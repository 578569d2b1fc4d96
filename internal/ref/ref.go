// Package ref implements a slow reference model of the tweakable
// hash on top of crypto/aes.
//
// Blocks are little-endian 128-bit integers: byte 0 holds the
// least significant bits.
package ref

import (
	"crypto/aes"
	"crypto/cipher"
)

type Hasher struct {
	b cipher.Block
}

func New(key []byte) (*Hasher, error) {
	b, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if b.BlockSize() != 16 {
		panic("ref: unexpected block size")
	}
	return &Hasher{b: b}, nil
}

func (h *Hasher) Encrypt(x [16]byte) [16]byte {
	var out [16]byte
	h.b.Encrypt(out[:], x[:])
	return out
}

// Double multiplies x by the generator, one byte at a time.
func Double(x [16]byte) [16]byte {
	var out [16]byte
	carry := x[15] >> 7
	for i := 15; i > 0; i-- {
		out[i] = x[i]<<1 | x[i-1]>>7
	}
	out[0] = x[0] << 1
	if carry == 1 {
		out[0] ^= 0x87
	}
	return out
}

func Xor(x, y [16]byte) [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = x[i] ^ y[i]
	}
	return out
}

func (h *Hasher) Hash(tweak, x [16]byte) [16]byte {
	return Xor(h.Encrypt(x), Xor(Double(x), tweak))
}

func (h *Hasher) Hash2(tweak, x, y [16]byte) [16]byte {
	return h.Hash(tweak, Xor(x, Double(y)))
}
