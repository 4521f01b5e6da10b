// Package reportconst contains constants of the Report contract shared
// between the contract itself, its RPC wrappers and tests.
package reportconst

// Report lifecycle statuses. StatusNone is never stored: a missing report
// record is the only representation of the absent state, which keeps
// "never created" distinguishable from any explicitly assigned status.
const (
	StatusNone = iota
	StatusCreated
	StatusChallenged
	StatusDisputed
	StatusResolved
)

// Dispute parties. Raw arbitrator rulings use the same encoding with
// PartyNone meaning the arbitrator refused or failed to decide.
const (
	PartyNone = iota
	PartySupporter
	PartyChallenger
)

// MultiplierDivisor is the basis-point divisor applied to all stake
// multipliers.
const MultiplierDivisor = 10000

// RulingOptions is the number of choices reported to the arbitrator when a
// dispute is created: a report claim is arbitrated as a binary outcome.
const RulingOptions = 2
