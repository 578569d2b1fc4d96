//go:build !amd64 || !gc || purego

package aes

const haveAsm = false

// hardwareEngine is never constructed without assembly.
type hardwareEngine struct {
	genericEngine
}
