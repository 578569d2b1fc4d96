// Copyright (c) 2016 Thomas Pornin <pornin@bolet.org>
// Copyright (c) 2017 Yawning Angel <yawning at schwanenlied dot me>
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN
// ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package aes

import (
	"encoding/binary"
	"math/bits"
)

// The portable engine is a constant-time bitsliced AES ported
// from BearSSL's aes_ct64. The state holds up to four blocks;
// q[i] and q[i+4] carry the interleaved words of block i.

var rcon = [Rounds]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// bitsliced is a round-key schedule converted to the bitsliced
// representation, replicated across all four block lanes.
type bitsliced [8 * (Rounds + 1)]uint64

type genericEngine struct{}

var _ Engine = genericEngine{}

func (genericEngine) ExpandKey(rk *Schedule, key *[KeySize]byte) {
	expandKeyGeneric(rk, key)
}

func (genericEngine) EncryptBlock(nr int, dst, src *Block, rk *Schedule) {
	checkRounds(nr)
	var sk bitsliced
	bitsliceSchedule(&sk, rk)
	encryptBlockGeneric(&sk, dst, src)
	wipe(sk[:])
}

func (genericEngine) encryptBlocks(nr int, dst, src []byte, rk *Schedule) {
	checkRounds(nr)
	var sk bitsliced
	bitsliceSchedule(&sk, rk)
	encryptBlocksGeneric(&sk, dst, src)
	wipe(sk[:])
}

// encryptBlocksGeneric encrypts len(src)/BlockSize blocks, four
// at a time where possible.
func encryptBlocksGeneric(sk *bitsliced, dst, src []byte) {
	for len(src) >= 4*BlockSize {
		encrypt4Generic(sk, dst[:4*BlockSize], src[:4*BlockSize])
		dst = dst[4*BlockSize:]
		src = src[4*BlockSize:]
	}
	for len(src) > 0 {
		encryptBlockGeneric(sk, (*Block)(dst[:BlockSize]), (*Block)(src[:BlockSize]))
		dst = dst[BlockSize:]
		src = src[BlockSize:]
	}
}

// expandKeyGeneric runs the FIPS-197 key expansion. Words are
// little-endian so that RotWord is a right rotation by 8.
func expandKeyGeneric(rk *Schedule, key *[KeySize]byte) {
	var w [4 * (Rounds + 1)]uint32
	for i := 0; i < 4; i++ {
		w[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	for i := 4; i < len(w); i++ {
		t := w[i-1]
		if i%4 == 0 {
			t = subWord(bits.RotateLeft32(t, -8)) ^ uint32(rcon[i/4-1])
		}
		w[i] = w[i-4] ^ t
	}
	for i, v := range w {
		binary.LittleEndian.PutUint32(rk[4*i:], v)
	}
	for i := range w {
		w[i] = 0
	}
}

func subWord(x uint32) uint32 {
	var q [8]uint64
	q[0] = uint64(x)
	ortho(&q)
	sbox(&q)
	ortho(&q)
	return uint32(q[0])
}

func bitsliceSchedule(sk *bitsliced, rk *Schedule) {
	var q [8]uint64
	var w [4]uint32
	for r := 0; r <= Rounds; r++ {
		for i := range w {
			w[i] = binary.LittleEndian.Uint32(rk[16*r+4*i:])
		}
		interleaveIn(&q[0], &q[4], &w)
		q[1], q[2], q[3] = q[0], q[0], q[0]
		q[5], q[6], q[7] = q[4], q[4], q[4]
		ortho(&q)
		lo := (q[0] & 0x1111111111111111) | (q[1] & 0x2222222222222222) |
			(q[2] & 0x4444444444444444) | (q[3] & 0x8888888888888888)
		hi := (q[4] & 0x1111111111111111) | (q[5] & 0x2222222222222222) |
			(q[6] & 0x4444444444444444) | (q[7] & 0x8888888888888888)
		spread(sk[8*r:8*r+4], lo)
		spread(sk[8*r+4:8*r+8], hi)
	}
	wipe(q[:])
}

// spread replicates each of the four lanes packed into x across
// all four lanes.
func spread(dst []uint64, x uint64) {
	_ = dst[3]
	x0 := x & 0x1111111111111111
	x1 := (x & 0x2222222222222222) >> 1
	x2 := (x & 0x4444444444444444) >> 2
	x3 := (x & 0x8888888888888888) >> 3
	dst[0] = (x0 << 4) - x0
	dst[1] = (x1 << 4) - x1
	dst[2] = (x2 << 4) - x2
	dst[3] = (x3 << 4) - x3
}

func encryptBlockGeneric(sk *bitsliced, dst, src *Block) {
	var q [8]uint64
	var w [4]uint32
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(src[4*i:])
	}
	interleaveIn(&q[0], &q[4], &w)
	ortho(&q)
	encryptBitsliced(sk, &q)
	ortho(&q)
	interleaveOut(&w, q[0], q[4])
	for i, v := range w {
		binary.LittleEndian.PutUint32(dst[4*i:], v)
	}
	wipe(q[:])
}

func encrypt4Generic(sk *bitsliced, dst, src []byte) {
	_ = src[4*BlockSize-1]
	_ = dst[4*BlockSize-1]

	var q [8]uint64
	var w [4]uint32
	for j := 0; j < 4; j++ {
		for i := range w {
			w[i] = binary.LittleEndian.Uint32(src[16*j+4*i:])
		}
		interleaveIn(&q[j], &q[j+4], &w)
	}
	ortho(&q)
	encryptBitsliced(sk, &q)
	ortho(&q)
	for j := 0; j < 4; j++ {
		interleaveOut(&w, q[j], q[j+4])
		for i, v := range w {
			binary.LittleEndian.PutUint32(dst[16*j+4*i:], v)
		}
	}
	wipe(q[:])
}

func encryptBitsliced(sk *bitsliced, q *[8]uint64) {
	addRoundKey(q, sk[0:8])
	for r := 1; r < Rounds; r++ {
		sbox(q)
		shiftRows(q)
		mixColumns(q)
		addRoundKey(q, sk[8*r:8*r+8])
	}
	sbox(q)
	shiftRows(q)
	addRoundKey(q, sk[8*Rounds:8*Rounds+8])
}

func addRoundKey(q *[8]uint64, sk []uint64) {
	_ = sk[7]
	for i := range q {
		q[i] ^= sk[i]
	}
}

func shiftRows(q *[8]uint64) {
	for i, x := range q {
		q[i] = (x & 0x000000000000ffff) |
			((x & 0x00000000fff00000) >> 4) |
			((x & 0x00000000000f0000) << 12) |
			((x & 0x0000ff0000000000) >> 8) |
			((x & 0x000000ff00000000) << 8) |
			((x & 0xf000000000000000) >> 12) |
			((x & 0x0fff000000000000) << 4)
	}
}

func mixColumns(q *[8]uint64) {
	q0, q1, q2, q3 := q[0], q[1], q[2], q[3]
	q4, q5, q6, q7 := q[4], q[5], q[6], q[7]
	r0 := bits.RotateLeft64(q0, -16)
	r1 := bits.RotateLeft64(q1, -16)
	r2 := bits.RotateLeft64(q2, -16)
	r3 := bits.RotateLeft64(q3, -16)
	r4 := bits.RotateLeft64(q4, -16)
	r5 := bits.RotateLeft64(q5, -16)
	r6 := bits.RotateLeft64(q6, -16)
	r7 := bits.RotateLeft64(q7, -16)

	q[0] = q7 ^ r7 ^ r0 ^ rotr32(q0^r0)
	q[1] = q0 ^ r0 ^ q7 ^ r7 ^ r1 ^ rotr32(q1^r1)
	q[2] = q1 ^ r1 ^ r2 ^ rotr32(q2^r2)
	q[3] = q2 ^ r2 ^ q7 ^ r7 ^ r3 ^ rotr32(q3^r3)
	q[4] = q3 ^ r3 ^ q7 ^ r7 ^ r4 ^ rotr32(q4^r4)
	q[5] = q4 ^ r4 ^ r5 ^ rotr32(q5^r5)
	q[6] = q5 ^ r5 ^ r6 ^ rotr32(q6^r6)
	q[7] = q6 ^ r6 ^ r7 ^ rotr32(q7^r7)
}

func rotr32(x uint64) uint64 {
	return bits.RotateLeft64(x, 32)
}

// ortho transposes the bitsliced state. It is an involution.
func ortho(q *[8]uint64) {
	const (
		cl2, ch2 = 0x5555555555555555, 0xaaaaaaaaaaaaaaaa
		cl4, ch4 = 0x3333333333333333, 0xcccccccccccccccc
		cl8, ch8 = 0x0f0f0f0f0f0f0f0f, 0xf0f0f0f0f0f0f0f0
	)
	for i := 0; i < 8; i += 2 {
		a, b := q[i], q[i+1]
		q[i] = (a & cl2) | ((b & cl2) << 1)
		q[i+1] = ((a & ch2) >> 1) | (b & ch2)
	}
	for _, i := range [...]int{0, 1, 4, 5} {
		a, b := q[i], q[i+2]
		q[i] = (a & cl4) | ((b & cl4) << 2)
		q[i+2] = ((a & ch4) >> 2) | (b & ch4)
	}
	for i := 0; i < 4; i++ {
		a, b := q[i], q[i+4]
		q[i] = (a & cl8) | ((b & cl8) << 4)
		q[i+4] = ((a & ch8) >> 4) | (b & ch8)
	}
}

func interleaveIn(q0, q1 *uint64, w *[4]uint32) {
	x0, x1, x2, x3 := uint64(w[0]), uint64(w[1]), uint64(w[2]), uint64(w[3])
	x0 = spreadBytes(x0)
	x1 = spreadBytes(x1)
	x2 = spreadBytes(x2)
	x3 = spreadBytes(x3)
	*q0 = x0 | (x2 << 8)
	*q1 = x1 | (x3 << 8)
}

// spreadBytes moves byte i of the low word of x to byte 2i.
func spreadBytes(x uint64) uint64 {
	x |= x << 16
	x &= 0x0000ffff0000ffff
	x |= x << 8
	x &= 0x00ff00ff00ff00ff
	return x
}

func interleaveOut(w *[4]uint32, q0, q1 uint64) {
	w[0] = gatherBytes(q0 & 0x00ff00ff00ff00ff)
	w[1] = gatherBytes(q1 & 0x00ff00ff00ff00ff)
	w[2] = gatherBytes((q0 >> 8) & 0x00ff00ff00ff00ff)
	w[3] = gatherBytes((q1 >> 8) & 0x00ff00ff00ff00ff)
}

// gatherBytes is the inverse of spreadBytes.
func gatherBytes(x uint64) uint32 {
	x |= x >> 8
	x &= 0x0000ffff0000ffff
	return uint32(x) | uint32(x>>16)
}

func wipe(s []uint64) {
	for i := range s {
		s[i] = 0
	}
}

// sbox applies SubBytes to the bitsliced state q using the
// Boyar-Peralta circuit (https://eprint.iacr.org/2009/191.pdf).
// Inputs x0..x7 and outputs s0..s7 are numbered from the high bit.
func sbox(q *[8]uint64) {
	x0 := q[7]
	x1 := q[6]
	x2 := q[5]
	x3 := q[4]
	x4 := q[3]
	x5 := q[2]
	x6 := q[1]
	x7 := q[0]

	// Top linear layer.
	y14 := x3 ^ x5
	y13 := x0 ^ x6
	y9 := x0 ^ x3
	y8 := x0 ^ x5
	t0 := x1 ^ x2
	y1 := t0 ^ x7
	y4 := y1 ^ x3
	y12 := y13 ^ y14
	y2 := y1 ^ x0
	y5 := y1 ^ x6
	y3 := y5 ^ y8
	t1 := x4 ^ y12
	y15 := t1 ^ x5
	y20 := t1 ^ x1
	y6 := y15 ^ x7
	y10 := y15 ^ t0
	y11 := y20 ^ y9
	y7 := x7 ^ y11
	y17 := y10 ^ y11
	y19 := y10 ^ y8
	y16 := t0 ^ y11
	y21 := y13 ^ y16
	y18 := x0 ^ y16

	// Non-linear layer.
	t2 := y12 & y15
	t3 := y3 & y6
	t4 := t3 ^ t2
	t5 := y4 & x7
	t6 := t5 ^ t2
	t7 := y13 & y16
	t8 := y5 & y1
	t9 := t8 ^ t7
	t10 := y2 & y7
	t11 := t10 ^ t7
	t12 := y9 & y11
	t13 := y14 & y17
	t14 := t13 ^ t12
	t15 := y8 & y10
	t16 := t15 ^ t12
	t17 := t4 ^ t14
	t18 := t6 ^ t16
	t19 := t9 ^ t14
	t20 := t11 ^ t16
	t21 := t17 ^ y20
	t22 := t18 ^ y19
	t23 := t19 ^ y21
	t24 := t20 ^ y18

	t25 := t21 ^ t22
	t26 := t21 & t23
	t27 := t24 ^ t26
	t28 := t25 & t27
	t29 := t28 ^ t22
	t30 := t23 ^ t24
	t31 := t22 ^ t26
	t32 := t31 & t30
	t33 := t32 ^ t24
	t34 := t23 ^ t33
	t35 := t27 ^ t33
	t36 := t24 & t35
	t37 := t36 ^ t34
	t38 := t27 ^ t36
	t39 := t29 & t38
	t40 := t25 ^ t39

	t41 := t40 ^ t37
	t42 := t29 ^ t33
	t43 := t29 ^ t40
	t44 := t33 ^ t37
	t45 := t42 ^ t41

	z0 := t44 & y15
	z1 := t37 & y6
	z2 := t33 & x7
	z3 := t43 & y16
	z4 := t40 & y1
	z5 := t29 & y7
	z6 := t42 & y11
	z7 := t45 & y17
	z8 := t41 & y10
	z9 := t44 & y12
	z10 := t37 & y3
	z11 := t33 & y4
	z12 := t43 & y13
	z13 := t40 & y5
	z14 := t29 & y2
	z15 := t42 & y9
	z16 := t45 & y14
	z17 := t41 & y8

	// Bottom linear layer.
	t46 := z15 ^ z16
	t47 := z10 ^ z11
	t48 := z5 ^ z13
	t49 := z9 ^ z10
	t50 := z2 ^ z12
	t51 := z2 ^ z5
	t52 := z7 ^ z8
	t53 := z0 ^ z3
	t54 := z6 ^ z7
	t55 := z16 ^ z17
	t56 := z12 ^ t48
	t57 := t50 ^ t53
	t58 := z4 ^ t46
	t59 := z3 ^ t54
	t60 := t46 ^ t57
	t61 := z14 ^ t57
	t62 := t52 ^ t58
	t63 := t49 ^ t58
	t64 := z4 ^ t59
	t65 := t61 ^ t62
	t66 := z1 ^ t63
	s0 := t59 ^ t63
	s6 := t56 ^ (^t62)
	s7 := t48 ^ (^t60)
	t67 := t64 ^ t65
	s3 := t53 ^ t66
	s4 := t51 ^ t66
	s5 := t47 ^ t65
	s1 := t64 ^ (^s3)
	s2 := t55 ^ (^t67)

	q[7] = s0
	q[6] = s1
	q[5] = s2
	q[4] = s3
	q[3] = s4
	q[2] = s5
	q[1] = s6
	q[0] = s7
}
