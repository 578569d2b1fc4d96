//go:build amd64 && gc && !purego

package aes

import "golang.org/x/sys/cpu"

var haveAsm = cpu.X86.HasAES && cpu.X86.HasSSE2

type hardwareEngine struct{}

var _ Engine = hardwareEngine{}

func (hardwareEngine) ExpandKey(rk *Schedule, key *[KeySize]byte) {
	expandKeyAsm(key, (*[ScheduleSize]byte)(rk))
}

func (hardwareEngine) EncryptBlock(nr int, dst, src *Block, rk *Schedule) {
	checkRounds(nr)
	encryptBlockAsm(nr, (*[BlockSize]byte)(dst), (*[BlockSize]byte)(src), (*[ScheduleSize]byte)(rk))
}

func (hardwareEngine) encryptBlocks(nr int, dst, src []byte, rk *Schedule) {
	checkRounds(nr)
	n := len(src) / BlockSize
	if n > 0 {
		encryptBlocksAsm(nr, &dst[0], &src[0], n, (*[ScheduleSize]byte)(rk))
	}
}
