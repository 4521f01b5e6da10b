package report

import (
	"github.com/kleros/Alice-Integration/common"
	"github.com/kleros/Alice-Integration/contracts/report/reportconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Report is a claim that some impact promise of an external agreement
	// was or was not fulfilled, together with the full state of its
	// challenge/dispute lifecycle.
	Report struct {
		// Agreement contract owning the claim.
		Agreement interop.Hash160
		// Claim key within the agreement.
		Key []byte
		// Account authorized to submit reports for the agreement.
		Submitter interop.Hash160
		// One of reportconst.Status* values. StatusNone is never stored.
		Status int
		// Arbitrator dispute ID, valid from StatusDisputed on.
		DisputeID int
		// Timestamp (ms) of the last timeout-relevant action.
		LastActionTime int
		// Account that confirmed the report, zero until set.
		Supporter interop.Hash160
		// Account that challenged the report, zero until set.
		Challenger interop.Hash160
		// Number of funding rounds stored for the report.
		RoundCount int
		// Final arbitration outcome, one of reportconst.Party* values.
		Ruling int
		// Whether the promise is judged fulfilled.
		Success bool
		// Whether a successful report was already forwarded to the
		// agreement. One-shot.
		Registered bool
	}

	// Round is a single funding cycle of a dispute or one of its appeals.
	// Per-party slices are indexed by reportconst.Party* values, the
	// PartyNone slot is unused.
	Round struct {
		// Fees paid so far by each party.
		PaidFees []int
		// Whether a party reached its required total for this round.
		HasPaid []bool
		// Contributions not forwarded to the arbitrator, distributed to
		// contributors of the prevailing party after resolution.
		FeeRewards int
	}
)

const (
	reportPrefix       = 'r'
	roundPrefix        = 'n'
	contributionPrefix = 'c'
	disputePrefix      = 'd'

	governorKey       = 'g'
	arbitratorKey     = 'a'
	extraDataKey      = 'x'
	timeoutKey        = 't'
	baseDepositKey    = 'b'
	sharedStakeKey    = 's'
	winnerStakeKey    = 'w'
	loserStakeKey     = 'l'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	governor := args[0].(interop.Hash160)
	arbitrator := args[1].(interop.Hash160)
	extraData := args[2].([]byte)
	executionTimeout := args[3].(int)
	baseDeposit := args[4].(int)
	sharedStakeMultiplier := args[5].(int)
	winnerStakeMultiplier := args[6].(int)
	loserStakeMultiplier := args[7].(int)

	if len(governor) != interop.Hash160Len || len(arbitrator) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}

	if executionTimeout <= 0 {
		panic("execution timeout must be positive")
	}

	ctx := storage.GetContext()

	storage.Put(ctx, governorKey, governor)
	storage.Put(ctx, arbitratorKey, arbitrator)
	storage.Put(ctx, extraDataKey, extraData)
	storage.Put(ctx, timeoutKey, executionTimeout)
	storage.Put(ctx, baseDepositKey, baseDeposit)
	storage.Put(ctx, sharedStakeKey, sharedStakeMultiplier)
	storage.Put(ctx, winnerStakeKey, winnerStakeMultiplier)
	storage.Put(ctx, loserStakeKey, loserStakeMultiplier)

	runtime.Log("report contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the governor.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckGovernorWitness(getGovernor(ctx))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("report contract updated")
}

// MakeReport creates a report stating that the claim identified by key within
// the given agreement contract resolved with the passed outcome. It can be
// invoked only by the account the agreement names as its authorized submitter,
// and only once per (agreement, key, submitter) triple.
//
// It produces ReportCreated notification.
func MakeReport(agreement interop.Hash160, key []byte, success bool) {
	if len(agreement) != interop.Hash160Len {
		panic("incorrect length of agreement script hash")
	}

	exists := contract.Call(agreement, "claimExists", contract.ReadOnly, key).(bool)
	if !exists {
		panic("claim not found")
	}

	submitter := contract.Call(agreement, "authorizedSubmitter", contract.ReadOnly).(interop.Hash160)
	if !runtime.CheckWitness(submitter) {
		panic("not authorized as submitter")
	}

	ctx := storage.GetContext()
	id := ReportID(agreement, key, submitter)

	if storage.Get(ctx, reportKey(id)) != nil {
		panic("report already exists")
	}

	rep := Report{
		Agreement:      agreement,
		Key:            key,
		Submitter:      submitter,
		Status:         reportconst.StatusCreated,
		LastActionTime: runtime.GetTime(),
		Supporter:      noParty(),
		Challenger:     noParty(),
		Success:        success,
	}
	common.SetSerialized(ctx, reportKey(id), rep)

	runtime.Notify("ReportCreated", id, agreement, key, submitter, success)
}

// ChallengeReport disputes the outcome claimed by the report. Any account may
// challenge within the execution timeout of report creation by covering the
// challenge total: the arbitration cost quoted by the arbitrator, the shared
// stake on top of it and the flat base deposit. The amount argument is pulled
// from the challenger account and must cover the total; any excess is sent
// back best-effort. A non-empty evidence argument is published for off-chain
// consumption.
//
// It produces Contribution and Evidence notifications.
func ChallengeReport(id []byte, challenger interop.Hash160, amount int, evidence string) {
	ctx := storage.GetContext()

	rep := getReport(ctx, id)
	if rep.Status != reportconst.StatusCreated {
		panic("invalid report status")
	}

	now := runtime.GetTime()
	if now-rep.LastActionTime > getTimeout(ctx) {
		panic("challenge window is over")
	}

	common.CheckWitness(challenger)
	common.PullDeposit(challenger, amount)

	arbitrationCost := quoteArbitrationCost(ctx)
	totalCost := totalWithStake(ctx, arbitrationCost, sharedStakeKey)
	totalCost = common.SatAdd(totalCost, common.GetInt(ctx, baseDepositKey))

	round := newRound()
	round = contribute(ctx, id, 0, round, reportconst.PartyChallenger, challenger, amount, totalCost)
	if round.PaidFees[reportconst.PartyChallenger] < totalCost {
		panic("insufficient deposit")
	}
	round.HasPaid[reportconst.PartyChallenger] = true
	putRound(ctx, id, 0, round)

	rep.Challenger = challenger
	rep.Status = reportconst.StatusChallenged
	rep.LastActionTime = now
	rep.RoundCount = 1
	common.SetSerialized(ctx, reportKey(id), rep)

	if len(evidence) != 0 {
		runtime.Notify("Evidence", id, challenger, evidence)
	}
}

// ConfirmReport rebuts a pending challenge, escalating the report to external
// arbitration. Any account may confirm within a fresh execution timeout
// window counted from the challenge, paying the same total as the challenger:
// quoted arbitration cost plus the shared stake plus the flat base deposit.
// The arbitration cost is forwarded to the arbitrator together with the
// dispute creation call and debited from the reward pool of the first round.
//
// It produces Contribution, Dispute and Evidence notifications.
func ConfirmReport(id []byte, supporter interop.Hash160, amount int, evidence string) {
	ctx := storage.GetContext()

	rep := getReport(ctx, id)
	if rep.Status != reportconst.StatusChallenged {
		panic("invalid report status")
	}

	now := runtime.GetTime()
	if now-rep.LastActionTime > getTimeout(ctx) {
		panic("confirmation window is over")
	}

	common.CheckWitness(supporter)
	common.PullDeposit(supporter, amount)

	arbitrationCost := quoteArbitrationCost(ctx)
	totalCost := totalWithStake(ctx, arbitrationCost, sharedStakeKey)
	totalCost = common.SatAdd(totalCost, common.GetInt(ctx, baseDepositKey))

	round := getRound(ctx, id, 0)
	round = contribute(ctx, id, 0, round, reportconst.PartySupporter, supporter, amount, totalCost)
	if round.PaidFees[reportconst.PartySupporter] < totalCost {
		panic("insufficient deposit")
	}
	round.HasPaid[reportconst.PartySupporter] = true

	arbitrator := getArbitrator(ctx)
	extraData := getExtraData(ctx)

	common.SendOrAbort(arbitrator, arbitrationCost)
	disputeID := contract.Call(arbitrator, "createDispute", contract.All,
		reportconst.RulingOptions, extraData).(int)

	round.FeeRewards = common.SatSub(round.FeeRewards, arbitrationCost)
	putRound(ctx, id, 0, round)
	putRound(ctx, id, 1, newRound())

	storage.Put(ctx, disputeKey(disputeID), id)

	rep.Supporter = supporter
	rep.Status = reportconst.StatusDisputed
	rep.DisputeID = disputeID
	rep.LastActionTime = now
	rep.RoundCount = 2
	common.SetSerialized(ctx, reportKey(id), rep)

	runtime.Notify("Dispute", arbitrator, disputeID, id)
	if len(evidence) != 0 {
		runtime.Notify("Evidence", id, supporter, evidence)
	}
}

// ApproveReport finalizes a report whose window passed without the
// counterparty acting. An unchallenged report resolves with the outcome its
// submitter claimed; an unconfirmed challenge resolves with the inverted
// outcome, as the challenge is assumed to have defeated the original claim.
// Anyone can invoke the method once the execution timeout elapsed.
//
// It produces ReportResolved notification.
func ApproveReport(id []byte) {
	ctx := storage.GetContext()

	rep := getReport(ctx, id)
	if rep.Status != reportconst.StatusCreated && rep.Status != reportconst.StatusChallenged {
		panic("invalid report status")
	}

	if runtime.GetTime()-rep.LastActionTime <= getTimeout(ctx) {
		panic("approve not yet available")
	}

	if rep.Status == reportconst.StatusChallenged {
		rep.Success = !rep.Success
	}
	rep.Status = reportconst.StatusResolved
	common.SetSerialized(ctx, reportKey(id), rep)

	runtime.Notify("ReportResolved", id, rep.Success)
}

// ValidateReport notifies the agreement contract that the promise behind a
// successfully resolved report was fulfilled. It can be invoked once per
// report.
//
// It produces PromiseValidated notification.
func ValidateReport(id []byte) {
	ctx := storage.GetContext()

	rep := getReport(ctx, id)
	if rep.Status != reportconst.StatusResolved {
		panic("report is not resolved")
	}
	if !rep.Success {
		panic("reported claim was not successful")
	}
	if rep.Registered {
		panic("promise already validated")
	}

	rep.Registered = true
	common.SetSerialized(ctx, reportKey(id), rep)

	contract.Call(rep.Agreement, "validatePromise", contract.All, rep.Key)

	runtime.Notify("PromiseValidated", id, rep.Key)
}

// FundAppeal contributes to the appeal stake of one side of a disputed
// report. Funding is open during the appeal window reported by the
// arbitrator; the side currently losing may fund only during the first half
// of the window. The required total is the quoted appeal cost plus a stake
// scaled by the winner, loser or shared multiplier depending on the current
// standing of the funded side. The amount is pulled from the contributor and
// any part above what the side still needs is sent back best-effort, so a
// call for an already covered side reduces to a refund. When both sides are
// fully funded in the same round, the appeal cost is forwarded to the
// arbitrator, the appeal is raised and a fresh round is opened.
//
// It produces Contribution and HasPaidAppealFee notifications.
func FundAppeal(id []byte, side int, contributor interop.Hash160, amount int) {
	if side != reportconst.PartySupporter && side != reportconst.PartyChallenger {
		panic("invalid party")
	}

	ctx := storage.GetContext()

	rep := getReport(ctx, id)
	if rep.Status != reportconst.StatusDisputed {
		panic("invalid report status")
	}

	arbitrator := getArbitrator(ctx)
	extraData := getExtraData(ctx)

	period := contract.Call(arbitrator, "appealPeriod", contract.ReadOnly, rep.DisputeID).([]int)
	start, end := period[0], period[1]

	now := runtime.GetTime()
	if now < start || now >= end {
		panic("appeal window is closed")
	}

	winner := contract.Call(arbitrator, "currentRuling", contract.ReadOnly, rep.DisputeID).(int)

	var stakeKey byte
	switch {
	case winner == side:
		stakeKey = winnerStakeKey
	case winner == reportconst.PartyNone:
		stakeKey = sharedStakeKey
	default:
		// the loser must fully fund in the first half of the window to
		// leave the winner time to respond
		if now-start >= (end-start)/2 {
			panic("loser funding window is over")
		}
		stakeKey = loserStakeKey
	}

	appealCost := contract.Call(arbitrator, "appealCost", contract.ReadOnly,
		rep.DisputeID, extraData).(int)
	totalCost := totalWithStake(ctx, appealCost, stakeKey)

	common.CheckWitness(contributor)
	common.PullDeposit(contributor, amount)

	roundIndex := rep.RoundCount - 1
	round := getRound(ctx, id, roundIndex)
	round = contribute(ctx, id, roundIndex, round, side, contributor, amount, totalCost)

	if !round.HasPaid[side] && round.PaidFees[side] >= totalCost {
		round.HasPaid[side] = true
		runtime.Notify("HasPaidAppealFee", id, side)
	}

	if round.HasPaid[reportconst.PartySupporter] && round.HasPaid[reportconst.PartyChallenger] {
		common.SendOrAbort(arbitrator, appealCost)
		contract.Call(arbitrator, "appeal", contract.All, rep.DisputeID, extraData)

		round.FeeRewards = common.SatSub(round.FeeRewards, appealCost)
		putRound(ctx, id, roundIndex, round)
		putRound(ctx, id, roundIndex+1, newRound())

		rep.RoundCount = rep.RoundCount + 1
		common.SetSerialized(ctx, reportKey(id), rep)
		return
	}

	putRound(ctx, id, roundIndex, round)
}

// SubmitEvidence publishes an evidence reference for an unresolved report on
// behalf of the witnessed party.
//
// It produces Evidence notification.
func SubmitEvidence(id []byte, party interop.Hash160, evidence string) {
	ctx := storage.GetReadOnlyContext()

	rep := getReport(ctx, id)
	if rep.Status == reportconst.StatusResolved {
		panic("invalid report status")
	}

	common.CheckWitness(party)

	runtime.Notify("Evidence", id, party, evidence)
}

// Rule records the final ruling of a dispute. It can be invoked only by the
// arbitrator contract the dispute was created with. If exactly one side fully
// funded the latest appeal round, the ruling is forced in favor of that side
// regardless of the raw value: the opponent forfeited by underfunding. A
// ruling for the challenger inverts the reported outcome, a refusal to rule
// forces the outcome to failure.
//
// It produces Ruling and ReportResolved notifications.
func Rule(disputeID int, ruling int) {
	ctx := storage.GetContext()

	arbitrator := getArbitrator(ctx)
	if !runtime.GetCallingScriptHash().Equals(arbitrator) {
		panic("only arbitrator can provide a ruling")
	}

	if ruling != reportconst.PartyNone &&
		ruling != reportconst.PartySupporter &&
		ruling != reportconst.PartyChallenger {
		panic("invalid ruling")
	}

	data := storage.Get(ctx, disputeKey(disputeID))
	if data == nil {
		panic("unknown dispute")
	}
	id := data.([]byte)

	rep := getReport(ctx, id)
	if rep.Status != reportconst.StatusDisputed {
		panic("invalid report status")
	}

	// a single-funder final round overrides the raw ruling
	lastRound := getRound(ctx, id, rep.RoundCount-1)
	if lastRound.HasPaid[reportconst.PartySupporter] != lastRound.HasPaid[reportconst.PartyChallenger] {
		if lastRound.HasPaid[reportconst.PartySupporter] {
			ruling = reportconst.PartySupporter
		} else {
			ruling = reportconst.PartyChallenger
		}
	}

	rep.Ruling = ruling
	rep.Status = reportconst.StatusResolved

	switch ruling {
	case reportconst.PartyChallenger:
		rep.Success = !rep.Success
	case reportconst.PartyNone:
		rep.Success = false
	}

	common.SetSerialized(ctx, reportKey(id), rep)

	runtime.Notify("Ruling", arbitrator, disputeID, ruling)
	runtime.Notify("ReportResolved", id, rep.Success)
}

// WithdrawFeesAndRewards pays the beneficiary the share of a resolved round
// it is entitled to: the full contribution back if the round never reached
// full funding on both sides, a stake-proportional share of the round reward
// pool split across both sides if the arbitrator refused to rule, or a share
// of the pool proportional to the contribution to the winning side otherwise.
// The beneficiary's recorded contributions are zeroed before the transfer, so
// repeated calls pay nothing.
//
// It produces RewardWithdrawn notification.
func WithdrawFeesAndRewards(beneficiary interop.Hash160, id []byte, roundIndex int) {
	ctx := storage.GetContext()

	rep := getReport(ctx, id)
	if rep.Status != reportconst.StatusResolved {
		panic("report is not resolved")
	}
	if roundIndex < 0 || roundIndex >= rep.RoundCount {
		panic("invalid round")
	}

	round := getRound(ctx, id, roundIndex)
	reward := roundReward(ctx, rep, round, id, roundIndex, beneficiary)

	storage.Delete(ctx, contributionKey(id, roundIndex, reportconst.PartySupporter, beneficiary))
	storage.Delete(ctx, contributionKey(id, roundIndex, reportconst.PartyChallenger, beneficiary))

	common.TrySend(beneficiary, reward)

	runtime.Notify("RewardWithdrawn", id, beneficiary, roundIndex, reward)
}

// AmountWithdrawable returns the total reward the beneficiary can currently
// withdraw across all rounds of a resolved report.
func AmountWithdrawable(id []byte, beneficiary interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()

	rep := getReport(ctx, id)
	if rep.Status != reportconst.StatusResolved {
		return 0
	}

	total := 0
	for i := 0; i < rep.RoundCount; i++ {
		round := getRound(ctx, id, i)
		total = common.SatAdd(total, roundReward(ctx, rep, round, id, i, beneficiary))
	}

	return total
}

// GetReport returns the stored report state.
func GetReport(id []byte) Report {
	ctx := storage.GetReadOnlyContext()
	return getReport(ctx, id)
}

// GetRound returns the accounting state of one funding round of the report.
func GetRound(id []byte, roundIndex int) Round {
	ctx := storage.GetReadOnlyContext()

	rep := getReport(ctx, id)
	if roundIndex < 0 || roundIndex >= rep.RoundCount {
		panic("invalid round")
	}

	return getRound(ctx, id, roundIndex)
}

// GetNumberOfRounds returns the number of funding rounds stored for the
// report.
func GetNumberOfRounds(id []byte) int {
	ctx := storage.GetReadOnlyContext()
	return getReport(ctx, id).RoundCount
}

// GetContribution returns the not yet withdrawn contribution of the account
// to one side of a funding round.
func GetContribution(id []byte, roundIndex int, contributor interop.Hash160, side int) int {
	ctx := storage.GetReadOnlyContext()
	return getContribution(ctx, id, roundIndex, side, contributor)
}

// IterateReports returns an iterator over all stored reports. Its keys are
// report IDs, its values are deserialized Report structures.
func IterateReports() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{reportPrefix},
		storage.RemovePrefix|storage.DeserializeValues)
}

// ReportID computes the deterministic identifier of a report from the
// agreement contract, the claim key and the submitter account.
func ReportID(agreement interop.Hash160, key []byte, submitter interop.Hash160) []byte {
	data := []byte(agreement)
	data = append(data, key...)
	data = append(data, submitter...)
	return crypto.Sha256(data)
}

// Governor returns the contract governor account.
func Governor() interop.Hash160 {
	return getGovernor(storage.GetReadOnlyContext())
}

// Arbitrator returns the arbitrator contract address.
func Arbitrator() interop.Hash160 {
	return getArbitrator(storage.GetReadOnlyContext())
}

// ExecutionTimeout returns the challenge/confirm/approve window in
// milliseconds.
func ExecutionTimeout() int {
	return getTimeout(storage.GetReadOnlyContext())
}

// BaseDeposit returns the flat deposit added to the challenge and
// confirmation totals.
func BaseDeposit() int {
	return common.GetInt(storage.GetReadOnlyContext(), baseDepositKey)
}

// SharedStakeMultiplier returns the basis-point stake multiplier applied
// when no side is currently winning.
func SharedStakeMultiplier() int {
	return common.GetInt(storage.GetReadOnlyContext(), sharedStakeKey)
}

// WinnerStakeMultiplier returns the basis-point stake multiplier for the
// currently winning side.
func WinnerStakeMultiplier() int {
	return common.GetInt(storage.GetReadOnlyContext(), winnerStakeKey)
}

// LoserStakeMultiplier returns the basis-point stake multiplier for the
// currently losing side.
func LoserStakeMultiplier() int {
	return common.GetInt(storage.GetReadOnlyContext(), loserStakeKey)
}

// ChangeGovernor transfers governorship to another account. It can be
// invoked only by the governor.
func ChangeGovernor(governor interop.Hash160) {
	if len(governor) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	setParameter(governorKey, governor)
}

// ChangeExecutionTimeout sets the challenge/confirm/approve window. It can be
// invoked only by the governor.
func ChangeExecutionTimeout(executionTimeout int) {
	if executionTimeout <= 0 {
		panic("execution timeout must be positive")
	}
	setParameter(timeoutKey, executionTimeout)
}

// ChangeBaseDeposit sets the flat challenge/confirmation deposit. It can be
// invoked only by the governor.
func ChangeBaseDeposit(baseDeposit int) {
	setParameter(baseDepositKey, baseDeposit)
}

// ChangeSharedStakeMultiplier sets the stake multiplier applied when no side
// is winning. It can be invoked only by the governor.
func ChangeSharedStakeMultiplier(multiplier int) {
	setParameter(sharedStakeKey, multiplier)
}

// ChangeWinnerStakeMultiplier sets the stake multiplier of the winning side.
// It can be invoked only by the governor.
func ChangeWinnerStakeMultiplier(multiplier int) {
	setParameter(winnerStakeKey, multiplier)
}

// ChangeLoserStakeMultiplier sets the stake multiplier of the losing side.
// It can be invoked only by the governor.
func ChangeLoserStakeMultiplier(multiplier int) {
	setParameter(loserStakeKey, multiplier)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// The contract account escrows deposits and reward pools, so it accepts GAS
// and nothing else.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("report contract accepts GAS only")
	}
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// contribute credits min(amount, what the side still needs) to the
// contributor's ledger, the side's paid fees and the round reward pool, and
// sends the remainder back best-effort. The updated round is returned, the
// caller stores it.
func contribute(ctx storage.Context, id []byte, roundIndex int, round Round, side int, contributor interop.Hash160, amount, totalRequired int) Round {
	needed := common.SatSub(totalRequired, round.PaidFees[side])

	taken := amount
	if taken > needed {
		taken = needed
	}
	remainder := amount - taken

	if taken > 0 {
		key := contributionKey(id, roundIndex, side, contributor)
		storage.Put(ctx, key, common.GetInt(ctx, key)+taken)

		round.PaidFees[side] += taken
		round.FeeRewards += taken

		runtime.Notify("Contribution", id, side, contributor, taken)
	}

	common.TrySend(contributor, remainder)

	return round
}

// roundReward computes the withdrawable amount without modifying state. The
// three cases are mutually exclusive: deposit return for a round that never
// reached full funding, a split of the reward pool over both sides when the
// arbitrator refused to rule, and a winner-proportional payout otherwise.
func roundReward(ctx storage.Context, rep Report, round Round, id []byte, roundIndex int, beneficiary interop.Hash160) int {
	supporterContribution := getContribution(ctx, id, roundIndex, reportconst.PartySupporter, beneficiary)
	challengerContribution := getContribution(ctx, id, roundIndex, reportconst.PartyChallenger, beneficiary)

	if !round.HasPaid[reportconst.PartySupporter] || !round.HasPaid[reportconst.PartyChallenger] {
		return supporterContribution + challengerContribution
	}

	if rep.Ruling == reportconst.PartyNone {
		totalPaid := round.PaidFees[reportconst.PartySupporter] + round.PaidFees[reportconst.PartyChallenger]
		if totalPaid == 0 {
			return 0
		}

		reward := common.SatMul(supporterContribution, round.FeeRewards) / totalPaid
		return reward + common.SatMul(challengerContribution, round.FeeRewards)/totalPaid
	}

	winnerPaid := round.PaidFees[rep.Ruling]
	if winnerPaid == 0 {
		return 0
	}

	winnerContribution := getContribution(ctx, id, roundIndex, rep.Ruling, beneficiary)
	return common.SatMul(winnerContribution, round.FeeRewards) / winnerPaid
}

// totalWithStake returns cost plus the basis-point stake stored under
// stakeKey, with saturating arithmetic.
func totalWithStake(ctx storage.Context, cost int, stakeKey byte) int {
	multiplier := common.GetInt(ctx, stakeKey)
	stake := common.SatMul(cost, multiplier) / reportconst.MultiplierDivisor
	return common.SatAdd(cost, stake)
}

func quoteArbitrationCost(ctx storage.Context) int {
	return contract.Call(getArbitrator(ctx), "arbitrationCost", contract.ReadOnly,
		getExtraData(ctx)).(int)
}

func setParameter(key byte, value any) {
	ctx := storage.GetContext()
	common.CheckGovernorWitness(getGovernor(ctx))
	storage.Put(ctx, key, value)
	runtime.Log("parameter has been updated")
}

// noParty returns the zero account script hash. Party fields hold it until
// the corresponding side joins, full-length so that off-chain decoders always
// see a valid Hash160.
func noParty() interop.Hash160 {
	return interop.Hash160(make([]byte, interop.Hash160Len))
}

func newRound() Round {
	return Round{
		PaidFees: []int{0, 0, 0},
		HasPaid:  []bool{false, false, false},
	}
}

func getReport(ctx storage.Context, id []byte) Report {
	data := storage.Get(ctx, reportKey(id))
	if data == nil {
		panic("report does not exist")
	}

	return std.Deserialize(data.([]byte)).(Report)
}

func getRound(ctx storage.Context, id []byte, roundIndex int) Round {
	data := storage.Get(ctx, roundKey(id, roundIndex))
	if data == nil {
		panic("round does not exist")
	}

	return std.Deserialize(data.([]byte)).(Round)
}

func putRound(ctx storage.Context, id []byte, roundIndex int, round Round) {
	common.SetSerialized(ctx, roundKey(id, roundIndex), round)
}

func getContribution(ctx storage.Context, id []byte, roundIndex, side int, contributor interop.Hash160) int {
	return common.GetInt(ctx, contributionKey(id, roundIndex, side, contributor))
}

func getGovernor(ctx storage.Context) interop.Hash160 {
	// the identity conversion makes the compiler normalize the item to
	// ByteString instead of the Buffer produced by the type assertion
	return interop.Hash160(storage.Get(ctx, governorKey).(interop.Hash160))
}

func getArbitrator(ctx storage.Context) interop.Hash160 {
	// see getGovernor for the conversion rationale
	return interop.Hash160(storage.Get(ctx, arbitratorKey).(interop.Hash160))
}

func getExtraData(ctx storage.Context) []byte {
	data := storage.Get(ctx, extraDataKey)
	if data == nil {
		return []byte{}
	}

	return data.([]byte)
}

func getTimeout(ctx storage.Context) int {
	return common.GetInt(ctx, timeoutKey)
}

func reportKey(id []byte) []byte {
	return append([]byte{reportPrefix}, id...)
}

func roundKey(id []byte, roundIndex int) []byte {
	key := append([]byte{roundPrefix}, id...)
	return append(key, convert.ToBytes(roundIndex)...)
}

func contributionKey(id []byte, roundIndex, side int, contributor interop.Hash160) []byte {
	key := append([]byte{contributionPrefix}, id...)
	key = append(key, contributor...)
	key = append(key, byte(side))
	return append(key, convert.ToBytes(roundIndex)...)
}

func disputeKey(disputeID int) []byte {
	return append([]byte{disputePrefix}, convert.ToBytes(disputeID)...)
}
