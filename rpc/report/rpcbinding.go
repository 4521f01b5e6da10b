// Package report contains RPC wrappers for Impact Report contract.
package report

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// ReportReport is a contract-specific report.Report type used by its methods.
type ReportReport struct {
	Agreement util.Uint160
	Key []byte
	Submitter util.Uint160
	Status *big.Int
	DisputeID *big.Int
	LastActionTime *big.Int
	Supporter util.Uint160
	Challenger util.Uint160
	RoundCount *big.Int
	Ruling *big.Int
	Success bool
	Registered bool
}

// ReportRound is a contract-specific report.Round type used by its methods.
type ReportRound struct {
	PaidFees []*big.Int
	HasPaid []bool
	FeeRewards *big.Int
}

// ReportCreatedEvent represents "ReportCreated" event emitted by the contract.
type ReportCreatedEvent struct {
	ID []byte
	Agreement util.Uint160
	Key []byte
	Submitter util.Uint160
	Success bool
}

// EvidenceEvent represents "Evidence" event emitted by the contract.
type EvidenceEvent struct {
	ID []byte
	Party util.Uint160
	Evidence string
}

// DisputeEvent represents "Dispute" event emitted by the contract.
type DisputeEvent struct {
	Arbitrator util.Uint160
	DisputeID *big.Int
	ID []byte
}

// ContributionEvent represents "Contribution" event emitted by the contract.
type ContributionEvent struct {
	ID []byte
	Side *big.Int
	Contributor util.Uint160
	Amount *big.Int
}

// HasPaidAppealFeeEvent represents "HasPaidAppealFee" event emitted by the contract.
type HasPaidAppealFeeEvent struct {
	ID []byte
	Side *big.Int
}

// RulingEvent represents "Ruling" event emitted by the contract.
type RulingEvent struct {
	Arbitrator util.Uint160
	DisputeID *big.Int
	Ruling *big.Int
}

// ReportResolvedEvent represents "ReportResolved" event emitted by the contract.
type ReportResolvedEvent struct {
	ID []byte
	Success bool
}

// RewardWithdrawnEvent represents "RewardWithdrawn" event emitted by the contract.
type RewardWithdrawnEvent struct {
	ID []byte
	Beneficiary util.Uint160
	RoundIndex *big.Int
	Amount *big.Int
}

// PromiseValidatedEvent represents "PromiseValidated" event emitted by the contract.
type PromiseValidatedEvent struct {
	ID []byte
	Key []byte
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AmountWithdrawable invokes `amountWithdrawable` method of contract.
func (c *ContractReader) AmountWithdrawable(id []byte, beneficiary util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "amountWithdrawable", id, beneficiary))
}

// Arbitrator invokes `arbitrator` method of contract.
func (c *ContractReader) Arbitrator() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "arbitrator"))
}

// BaseDeposit invokes `baseDeposit` method of contract.
func (c *ContractReader) BaseDeposit() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "baseDeposit"))
}

// ExecutionTimeout invokes `executionTimeout` method of contract.
func (c *ContractReader) ExecutionTimeout() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "executionTimeout"))
}

// GetContribution invokes `getContribution` method of contract.
func (c *ContractReader) GetContribution(id []byte, roundIndex *big.Int, contributor util.Uint160, side *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getContribution", id, roundIndex, contributor, side))
}

// GetNumberOfRounds invokes `getNumberOfRounds` method of contract.
func (c *ContractReader) GetNumberOfRounds(id []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getNumberOfRounds", id))
}

// GetReport invokes `getReport` method of contract.
func (c *ContractReader) GetReport(id []byte) (*ReportReport, error) {
	return itemToReportReport(unwrap.Item(c.invoker.Call(c.hash, "getReport", id)))
}

// GetRound invokes `getRound` method of contract.
func (c *ContractReader) GetRound(id []byte, roundIndex *big.Int) (*ReportRound, error) {
	return itemToReportRound(unwrap.Item(c.invoker.Call(c.hash, "getRound", id, roundIndex)))
}

// Governor invokes `governor` method of contract.
func (c *ContractReader) Governor() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "governor"))
}

// IterateReports invokes `iterateReports` method of contract.
func (c *ContractReader) IterateReports() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateReports"))
}

// IterateReportsExpanded is similar to IterateReports (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateReportsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateReports", _numOfIteratorItems))
}

// LoserStakeMultiplier invokes `loserStakeMultiplier` method of contract.
func (c *ContractReader) LoserStakeMultiplier() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "loserStakeMultiplier"))
}

// ReportID invokes `reportID` method of contract.
func (c *ContractReader) ReportID(agreement util.Uint160, key []byte, submitter util.Uint160) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "reportID", agreement, key, submitter))
}

// SharedStakeMultiplier invokes `sharedStakeMultiplier` method of contract.
func (c *ContractReader) SharedStakeMultiplier() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "sharedStakeMultiplier"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// WinnerStakeMultiplier invokes `winnerStakeMultiplier` method of contract.
func (c *ContractReader) WinnerStakeMultiplier() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "winnerStakeMultiplier"))
}

// ApproveReport creates a transaction invoking `approveReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ApproveReport(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approveReport", id)
}

// ApproveReportTransaction creates a transaction invoking `approveReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveReportTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approveReport", id)
}

// ApproveReportUnsigned creates a transaction invoking `approveReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveReportUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approveReport", nil, id)
}

// ChallengeReport creates a transaction invoking `challengeReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChallengeReport(id []byte, challenger util.Uint160, amount *big.Int, evidence string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "challengeReport", id, challenger, amount, evidence)
}

// ChallengeReportTransaction creates a transaction invoking `challengeReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChallengeReportTransaction(id []byte, challenger util.Uint160, amount *big.Int, evidence string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "challengeReport", id, challenger, amount, evidence)
}

// ChallengeReportUnsigned creates a transaction invoking `challengeReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChallengeReportUnsigned(id []byte, challenger util.Uint160, amount *big.Int, evidence string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "challengeReport", nil, id, challenger, amount, evidence)
}

// ChangeBaseDeposit creates a transaction invoking `changeBaseDeposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeBaseDeposit(baseDeposit *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeBaseDeposit", baseDeposit)
}

// ChangeBaseDepositTransaction creates a transaction invoking `changeBaseDeposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeBaseDepositTransaction(baseDeposit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeBaseDeposit", baseDeposit)
}

// ChangeBaseDepositUnsigned creates a transaction invoking `changeBaseDeposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeBaseDepositUnsigned(baseDeposit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeBaseDeposit", nil, baseDeposit)
}

// ChangeExecutionTimeout creates a transaction invoking `changeExecutionTimeout` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeExecutionTimeout(executionTimeout *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeExecutionTimeout", executionTimeout)
}

// ChangeExecutionTimeoutTransaction creates a transaction invoking `changeExecutionTimeout` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeExecutionTimeoutTransaction(executionTimeout *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeExecutionTimeout", executionTimeout)
}

// ChangeExecutionTimeoutUnsigned creates a transaction invoking `changeExecutionTimeout` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeExecutionTimeoutUnsigned(executionTimeout *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeExecutionTimeout", nil, executionTimeout)
}

// ChangeGovernor creates a transaction invoking `changeGovernor` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeGovernor(governor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeGovernor", governor)
}

// ChangeGovernorTransaction creates a transaction invoking `changeGovernor` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeGovernorTransaction(governor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeGovernor", governor)
}

// ChangeGovernorUnsigned creates a transaction invoking `changeGovernor` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeGovernorUnsigned(governor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeGovernor", nil, governor)
}

// ChangeLoserStakeMultiplier creates a transaction invoking `changeLoserStakeMultiplier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeLoserStakeMultiplier(multiplier *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeLoserStakeMultiplier", multiplier)
}

// ChangeLoserStakeMultiplierTransaction creates a transaction invoking `changeLoserStakeMultiplier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeLoserStakeMultiplierTransaction(multiplier *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeLoserStakeMultiplier", multiplier)
}

// ChangeLoserStakeMultiplierUnsigned creates a transaction invoking `changeLoserStakeMultiplier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeLoserStakeMultiplierUnsigned(multiplier *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeLoserStakeMultiplier", nil, multiplier)
}

// ChangeSharedStakeMultiplier creates a transaction invoking `changeSharedStakeMultiplier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeSharedStakeMultiplier(multiplier *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeSharedStakeMultiplier", multiplier)
}

// ChangeSharedStakeMultiplierTransaction creates a transaction invoking `changeSharedStakeMultiplier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeSharedStakeMultiplierTransaction(multiplier *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeSharedStakeMultiplier", multiplier)
}

// ChangeSharedStakeMultiplierUnsigned creates a transaction invoking `changeSharedStakeMultiplier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeSharedStakeMultiplierUnsigned(multiplier *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeSharedStakeMultiplier", nil, multiplier)
}

// ChangeWinnerStakeMultiplier creates a transaction invoking `changeWinnerStakeMultiplier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeWinnerStakeMultiplier(multiplier *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeWinnerStakeMultiplier", multiplier)
}

// ChangeWinnerStakeMultiplierTransaction creates a transaction invoking `changeWinnerStakeMultiplier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeWinnerStakeMultiplierTransaction(multiplier *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeWinnerStakeMultiplier", multiplier)
}

// ChangeWinnerStakeMultiplierUnsigned creates a transaction invoking `changeWinnerStakeMultiplier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeWinnerStakeMultiplierUnsigned(multiplier *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeWinnerStakeMultiplier", nil, multiplier)
}

// ConfirmReport creates a transaction invoking `confirmReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ConfirmReport(id []byte, supporter util.Uint160, amount *big.Int, evidence string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "confirmReport", id, supporter, amount, evidence)
}

// ConfirmReportTransaction creates a transaction invoking `confirmReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConfirmReportTransaction(id []byte, supporter util.Uint160, amount *big.Int, evidence string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "confirmReport", id, supporter, amount, evidence)
}

// ConfirmReportUnsigned creates a transaction invoking `confirmReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConfirmReportUnsigned(id []byte, supporter util.Uint160, amount *big.Int, evidence string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "confirmReport", nil, id, supporter, amount, evidence)
}

// FundAppeal creates a transaction invoking `fundAppeal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FundAppeal(id []byte, side *big.Int, contributor util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fundAppeal", id, side, contributor, amount)
}

// FundAppealTransaction creates a transaction invoking `fundAppeal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FundAppealTransaction(id []byte, side *big.Int, contributor util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fundAppeal", id, side, contributor, amount)
}

// FundAppealUnsigned creates a transaction invoking `fundAppeal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FundAppealUnsigned(id []byte, side *big.Int, contributor util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fundAppeal", nil, id, side, contributor, amount)
}

// MakeReport creates a transaction invoking `makeReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MakeReport(agreement util.Uint160, key []byte, success bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "makeReport", agreement, key, success)
}

// MakeReportTransaction creates a transaction invoking `makeReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MakeReportTransaction(agreement util.Uint160, key []byte, success bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "makeReport", agreement, key, success)
}

// MakeReportUnsigned creates a transaction invoking `makeReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MakeReportUnsigned(agreement util.Uint160, key []byte, success bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "makeReport", nil, agreement, key, success)
}

// OnNEP17Payment creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnNEP17Payment(from util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentTransaction creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnNEP17PaymentTransaction(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentUnsigned creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnNEP17PaymentUnsigned(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onNEP17Payment", nil, from, amount, data)
}

// Rule creates a transaction invoking `rule` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Rule(disputeID *big.Int, ruling *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rule", disputeID, ruling)
}

// RuleTransaction creates a transaction invoking `rule` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RuleTransaction(disputeID *big.Int, ruling *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rule", disputeID, ruling)
}

// RuleUnsigned creates a transaction invoking `rule` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RuleUnsigned(disputeID *big.Int, ruling *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rule", nil, disputeID, ruling)
}

// SubmitEvidence creates a transaction invoking `submitEvidence` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitEvidence(id []byte, party util.Uint160, evidence string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitEvidence", id, party, evidence)
}

// SubmitEvidenceTransaction creates a transaction invoking `submitEvidence` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitEvidenceTransaction(id []byte, party util.Uint160, evidence string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitEvidence", id, party, evidence)
}

// SubmitEvidenceUnsigned creates a transaction invoking `submitEvidence` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitEvidenceUnsigned(id []byte, party util.Uint160, evidence string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitEvidence", nil, id, party, evidence)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// ValidateReport creates a transaction invoking `validateReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ValidateReport(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "validateReport", id)
}

// ValidateReportTransaction creates a transaction invoking `validateReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ValidateReportTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "validateReport", id)
}

// ValidateReportUnsigned creates a transaction invoking `validateReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ValidateReportUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "validateReport", nil, id)
}

// WithdrawFeesAndRewards creates a transaction invoking `withdrawFeesAndRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawFeesAndRewards(beneficiary util.Uint160, id []byte, roundIndex *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawFeesAndRewards", beneficiary, id, roundIndex)
}

// WithdrawFeesAndRewardsTransaction creates a transaction invoking `withdrawFeesAndRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawFeesAndRewardsTransaction(beneficiary util.Uint160, id []byte, roundIndex *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawFeesAndRewards", beneficiary, id, roundIndex)
}

// WithdrawFeesAndRewardsUnsigned creates a transaction invoking `withdrawFeesAndRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawFeesAndRewardsUnsigned(beneficiary util.Uint160, id []byte, roundIndex *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawFeesAndRewards", nil, beneficiary, id, roundIndex)
}

// itemToReportReport converts stack item into *ReportReport.
func itemToReportReport(item stackitem.Item, err error) (*ReportReport, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReportReport)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReportReport from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReportReport) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 12 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Agreement, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Agreement: %w", err)
	}

	index++
	res.Key, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	index++
	res.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.DisputeID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DisputeID: %w", err)
	}

	index++
	res.LastActionTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastActionTime: %w", err)
	}

	index++
	res.Supporter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Supporter: %w", err)
	}

	index++
	res.Challenger, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Challenger: %w", err)
	}

	index++
	res.RoundCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RoundCount: %w", err)
	}

	index++
	res.Ruling, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Ruling: %w", err)
	}

	index++
	res.Success, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Success: %w", err)
	}

	index++
	res.Registered, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Registered: %w", err)
	}

	return nil
}

// itemToReportRound converts stack item into *ReportRound.
func itemToReportRound(item stackitem.Item, err error) (*ReportRound, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ReportRound)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ReportRound from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ReportRound) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.PaidFees, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PaidFees: %w", err)
	}

	index++
	res.HasPaid, err = func (item stackitem.Item) ([]bool, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]bool, len(arr))
		for i := range res {
			res[i], err = arr[i].TryBool()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field HasPaid: %w", err)
	}

	index++
	res.FeeRewards, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FeeRewards: %w", err)
	}

	return nil
}

// ReportCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportCreated" name from the provided [result.ApplicationLog].
func ReportCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportCreated" {
				continue
			}
			event := new(ReportCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Agreement, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Agreement: %w", err)
	}

	index++
	e.Key, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	index++
	e.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	e.Success, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Success: %w", err)
	}

	return nil
}

// EvidenceEventsFromApplicationLog retrieves a set of all emitted events
// with "Evidence" name from the provided [result.ApplicationLog].
func EvidenceEventsFromApplicationLog(log *result.ApplicationLog) ([]*EvidenceEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EvidenceEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Evidence" {
				continue
			}
			event := new(EvidenceEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EvidenceEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EvidenceEvent or
// returns an error if it's not possible to do to so.
func (e *EvidenceEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Party, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Party: %w", err)
	}

	index++
	e.Evidence, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Evidence: %w", err)
	}

	return nil
}

// DisputeEventsFromApplicationLog retrieves a set of all emitted events
// with "Dispute" name from the provided [result.ApplicationLog].
func DisputeEventsFromApplicationLog(log *result.ApplicationLog) ([]*DisputeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DisputeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Dispute" {
				continue
			}
			event := new(DisputeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DisputeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DisputeEvent or
// returns an error if it's not possible to do to so.
func (e *DisputeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Arbitrator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Arbitrator: %w", err)
	}

	index++
	e.DisputeID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DisputeID: %w", err)
	}

	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// ContributionEventsFromApplicationLog retrieves a set of all emitted events
// with "Contribution" name from the provided [result.ApplicationLog].
func ContributionEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContributionEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContributionEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Contribution" {
				continue
			}
			event := new(ContributionEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContributionEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContributionEvent or
// returns an error if it's not possible to do to so.
func (e *ContributionEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Side, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Side: %w", err)
	}

	index++
	e.Contributor, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Contributor: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// HasPaidAppealFeeEventsFromApplicationLog retrieves a set of all emitted events
// with "HasPaidAppealFee" name from the provided [result.ApplicationLog].
func HasPaidAppealFeeEventsFromApplicationLog(log *result.ApplicationLog) ([]*HasPaidAppealFeeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*HasPaidAppealFeeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "HasPaidAppealFee" {
				continue
			}
			event := new(HasPaidAppealFeeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize HasPaidAppealFeeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to HasPaidAppealFeeEvent or
// returns an error if it's not possible to do to so.
func (e *HasPaidAppealFeeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Side, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Side: %w", err)
	}

	return nil
}

// RulingEventsFromApplicationLog retrieves a set of all emitted events
// with "Ruling" name from the provided [result.ApplicationLog].
func RulingEventsFromApplicationLog(log *result.ApplicationLog) ([]*RulingEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RulingEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Ruling" {
				continue
			}
			event := new(RulingEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RulingEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RulingEvent or
// returns an error if it's not possible to do to so.
func (e *RulingEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Arbitrator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Arbitrator: %w", err)
	}

	index++
	e.DisputeID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DisputeID: %w", err)
	}

	index++
	e.Ruling, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Ruling: %w", err)
	}

	return nil
}

// ReportResolvedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportResolved" name from the provided [result.ApplicationLog].
func ReportResolvedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportResolvedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportResolvedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportResolved" {
				continue
			}
			event := new(ReportResolvedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportResolvedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportResolvedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportResolvedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Success, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Success: %w", err)
	}

	return nil
}

// RewardWithdrawnEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardWithdrawn" name from the provided [result.ApplicationLog].
func RewardWithdrawnEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardWithdrawnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardWithdrawnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardWithdrawn" {
				continue
			}
			event := new(RewardWithdrawnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardWithdrawnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardWithdrawnEvent or
// returns an error if it's not possible to do to so.
func (e *RewardWithdrawnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Beneficiary, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Beneficiary: %w", err)
	}

	index++
	e.RoundIndex, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RoundIndex: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// PromiseValidatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PromiseValidated" name from the provided [result.ApplicationLog].
func PromiseValidatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PromiseValidatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PromiseValidatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PromiseValidated" {
				continue
			}
			event := new(PromiseValidatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PromiseValidatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PromiseValidatedEvent or
// returns an error if it's not possible to do to so.
func (e *PromiseValidatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Key, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	return nil
}
