// Package aes implements a fixed-key AES-128 permutation and the
// tweakable correlation-robust hash built on top of it.
//
// The hash is intended for garbled-circuit gate hashing and OT
// extension, where the inputs are 128-bit labels. It is not a
// general-purpose hash function.
//
// Values are converted to and from blocks in little-endian order:
// the low limb of a Uint128 occupies bytes 0-7 of its Block.
package aes

import (
	"github.com/ericlagergren/subtle"
)

const (
	// KeySize is the size in bytes of an AES-128 key.
	KeySize = 16
	// BlockSize is the size in bytes of an AES block.
	BlockSize = 16
	// Rounds is the number of AES-128 rounds.
	Rounds = 10
	// ScheduleSize is the size in bytes of an expanded AES-128
	// key: one 16-byte round key per round plus the whitening
	// key.
	ScheduleSize = (Rounds + 1) * BlockSize
)

// Block is a single AES block.
type Block [BlockSize]byte

// Schedule holds the expanded round keys in round order, each in
// FIPS-197 byte order.
type Schedule [ScheduleSize]byte

// Cipher is AES-128 under a fixed key.
//
// A Cipher must be created with New, NewFromBytes or
// NewWithEngine; the zero value panics on use. A Cipher is
// immutable after construction and safe for concurrent use.
// Copying a Cipher copies its schedule.
type Cipher struct {
	rk Schedule
	e  Engine
	// sk is the bitsliced form of rk, set only for the generic
	// engine. It is never modified after construction.
	sk *bitsliced
}

// New creates a Cipher from a 128-bit key.
//
// The key is converted to its Block layout first, so New(k) and
// NewFromBytes(k.Bytes()) are identical.
func New(key Uint128) *Cipher {
	return NewFromBytes(key.Bytes())
}

// NewFromBytes creates a Cipher from a 16-byte key using the
// default engine.
func NewFromBytes(key [KeySize]byte) *Cipher {
	return NewWithEngine(DefaultEngine(), key)
}

// NewWithEngine creates a Cipher from a 16-byte key using the
// provided engine.
func NewWithEngine(e Engine, key [KeySize]byte) *Cipher {
	if e == nil {
		panic("aes: nil engine")
	}
	c := &Cipher{e: e}
	e.ExpandKey(&c.rk, &key)
	c.precompute()
	return c
}

func newFromSchedule(e Engine, rk *Schedule) *Cipher {
	c := &Cipher{rk: *rk, e: e}
	c.precompute()
	return c
}

// precompute bitslices the schedule once so that the generic
// engine does not redo it for every block.
func (c *Cipher) precompute() {
	if _, ok := c.e.(genericEngine); ok {
		c.sk = new(bitsliced)
		bitsliceSchedule(c.sk, &c.rk)
	}
}

func (c *Cipher) engine() Engine {
	if c.e == nil {
		panic("aes: uninitialized Cipher")
	}
	return c.e
}

// Clone returns an independent copy of c.
func (c *Cipher) Clone() *Cipher {
	c2 := *c
	return &c2
}

// Schedule returns a copy of c's round keys.
func (c *Cipher) Schedule() Schedule {
	return c.rk
}

// EncryptBlock encrypts a single block.
func (c *Cipher) EncryptBlock(in Block) Block {
	var out Block
	if c.sk != nil {
		encryptBlockGeneric(c.sk, &out, &in)
	} else {
		c.engine().EncryptBlock(Rounds, &out, &in, &c.rk)
	}
	return out
}

// Encrypt encrypts x, interpreted as a Block.
func (c *Cipher) Encrypt(x Uint128) Uint128 {
	return Uint128FromBytes(c.EncryptBlock(x.Bytes()))
}

// EncryptBlocks encrypts each block in src into dst, in ECB
// order.
//
// len(src) must be a multiple of BlockSize and dst must be at
// least as long as src. dst and src may overlap entirely or not
// at all.
func (c *Cipher) EncryptBlocks(dst, src []byte) {
	if len(src)%BlockSize != 0 {
		panic("aes: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("aes: output smaller than input")
	}
	dst = dst[:len(src)]
	if subtle.InexactOverlap(dst, src) {
		panic("aes: invalid buffer overlap")
	}
	if c.sk != nil {
		encryptBlocksGeneric(c.sk, dst, src)
		return
	}
	e := c.engine()
	if b, ok := e.(blocksEngine); ok {
		b.encryptBlocks(Rounds, dst, src, &c.rk)
		return
	}
	for len(src) > 0 {
		e.EncryptBlock(Rounds, (*Block)(dst[:BlockSize]), (*Block)(src[:BlockSize]), &c.rk)
		dst = dst[BlockSize:]
		src = src[BlockSize:]
	}
}
