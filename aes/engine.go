package aes

// Engine is an AES-128 implementation.
//
// Implementations must be constant time and must agree bit for
// bit with FIPS-197.
type Engine interface {
	// ExpandKey writes the AES-128 key schedule for key to rk.
	ExpandKey(rk *Schedule, key *[KeySize]byte)
	// EncryptBlock encrypts src into dst using nr rounds of rk.
	// dst and src may alias.
	EncryptBlock(nr int, dst, src *Block, rk *Schedule)
}

// blocksEngine is implemented by engines that can encrypt more
// than one block per call.
type blocksEngine interface {
	encryptBlocks(nr int, dst, src []byte, rk *Schedule)
}

// Generic is the portable engine.
var Generic Engine = genericEngine{}

// Hardware returns the engine backed by CPU AES instructions,
// if any.
func Hardware() (Engine, bool) {
	if haveAsm {
		return hardwareEngine{}, true
	}
	return nil, false
}

// DefaultEngine returns the hardware engine if available and
// Generic otherwise.
func DefaultEngine() Engine {
	if e, ok := Hardware(); ok {
		return e
	}
	return Generic
}

func checkRounds(nr int) {
	if nr != Rounds {
		panic("aes: invalid number of rounds")
	}
}
