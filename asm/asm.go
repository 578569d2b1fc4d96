package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

//go:generate go run asm.go -out ../aes/aes_amd64.s -stubs ../aes/stub_amd64.go -pkg aes

// rcon is the AES-128 round constant sequence.
var rcon = [10]uint8{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

func main() {
	Package("github.com/Pratyush/fancy-garbling/aes")
	ConstraintExpr("gc,!purego")

	declareExpandKey()
	declareEncryptBlock()
	declareEncryptBlocks()

	Generate()
}

func declareExpandKey() {
	TEXT("expandKeyAsm", NOSPLIT, "func(key *[KeySize]byte, rk *[ScheduleSize]byte)")
	Pragma("noescape")

	keyp := Mem{Base: Load(Param("key"), GP64())}
	rkp := Mem{Base: Load(Param("rk"), GP64())}

	k, t, z := XMM(), XMM(), XMM()
	MOVOU(keyp, k)
	MOVOU(k, rkp)

	Comment("The low two words of z stay zero across every round.")
	PXOR(z, z)

	for i, c := range rcon {
		Commentf("Round key %d", i+1)
		AESKEYGENASSIST(U8(c), k, t)
		PSHUFD(U8(0xff), t, t)
		SHUFPS(U8(0x10), k, z)
		PXOR(z, k)
		SHUFPS(U8(0x8c), k, z)
		PXOR(z, k)
		PXOR(t, k)
		MOVOU(k, rkp.Offset((i+1)*16))
	}
	RET()
}

// encrypt emits nr rounds over x using the round keys at rkp.
func encrypt(nr Register, rkp Mem, x VecVirtual) {
	ctr, rk := GP64(), XMM()
	MOVQ(nr, ctr)
	p := GP64()
	MOVQ(rkp.Base, p)

	MOVOU(Mem{Base: p}, rk)
	PXOR(rk, x)
	ADDQ(U8(16), p)
	DECQ(ctr)

	Label("round")
	MOVOU(Mem{Base: p}, rk)
	AESENC(rk, x)
	ADDQ(U8(16), p)
	DECQ(ctr)
	JNZ(LabelRef("round"))

	MOVOU(Mem{Base: p}, rk)
	AESENCLAST(rk, x)
}

func declareEncryptBlock() {
	TEXT("encryptBlockAsm", NOSPLIT, "func(nr int, dst, src *[BlockSize]byte, rk *[ScheduleSize]byte)")
	Pragma("noescape")

	nr := Load(Param("nr"), GP64())
	dst := Mem{Base: Load(Param("dst"), GP64())}
	src := Mem{Base: Load(Param("src"), GP64())}
	rkp := Mem{Base: Load(Param("rk"), GP64())}

	x := XMM()
	MOVOU(src, x)
	encrypt(nr, rkp, x)
	MOVOU(x, dst)
	RET()
}

func declareEncryptBlocks() {
	TEXT("encryptBlocksAsm", NOSPLIT, "func(nr int, dst, src *byte, n int, rk *[ScheduleSize]byte)")
	Pragma("noescape")

	nr := Load(Param("nr"), GP64())
	dst := Mem{Base: Load(Param("dst"), GP64())}
	src := Mem{Base: Load(Param("src"), GP64())}
	n := Load(Param("n"), GP64())
	rkp := Mem{Base: Load(Param("rk"), GP64())}

	Label("loop")
	x := XMM()
	MOVOU(src, x)
	encrypt(nr, rkp, x)
	MOVOU(x, dst)
	ADDQ(U8(16), src.Base)
	ADDQ(U8(16), dst.Base)
	DECQ(n)
	JNZ(LabelRef("loop"))
	RET()
}
