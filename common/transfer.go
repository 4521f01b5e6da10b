package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// PullDeposit transfers amount of GAS from the payer account to the contract
// account. The transfer requires the payer's witness, so only the declared
// payer can be charged. It panics if the transfer does not succeed, aborting
// the whole call.
func PullDeposit(payer interop.Hash160, amount int) {
	if amount <= 0 {
		return
	}

	transferred := gas.Transfer(payer, runtime.GetExecutingScriptHash(), amount, nil)
	if !transferred {
		panic("failed to transfer deposit, aborting")
	}
}

// TrySend pushes amount of GAS from the contract account to the recipient.
// The transfer is best-effort: a recipient rejecting the payment must not
// block the state transition that triggered it, so failure is logged and
// ignored. It reports whether the transfer went through.
func TrySend(to interop.Hash160, amount int) bool {
	if amount <= 0 {
		return true
	}

	transferred := gas.Transfer(runtime.GetExecutingScriptHash(), to, amount, nil)
	if !transferred {
		runtime.Log("failed to send funds to recipient")
	}

	return transferred
}

// SendOrAbort pushes amount of GAS from the contract account to the recipient
// and stops the transaction with the ABORT opcode if the transfer fails. It is
// used for forwarding collected fees to the arbitrator where silent loss of
// funds is not acceptable.
func SendOrAbort(to interop.Hash160, amount int) {
	if amount <= 0 {
		return
	}

	transferred := gas.Transfer(runtime.GetExecutingScriptHash(), to, amount, nil)
	if !transferred {
		AbortWithMessage("failed to forward fees")
	}
}

// AbortWithMessage calls `runtime.Log` with passed message
// and calls `ABORT` opcode.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}
