package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrGovernorWitnessFailed appears when the method must be called
	// by the contract governor but was not.
	ErrGovernorWitnessFailed = "governor witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using a certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckGovernorWitness checks witness of the passed governor account.
// It panics with ErrGovernorWitnessFailed message on fail.
func CheckGovernorWitness(governor []byte) {
	checkWitnessWithPanic(governor, ErrGovernorWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
