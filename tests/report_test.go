package tests

import (
	"math/big"
	"testing"

	"github.com/kleros/Alice-Integration/contracts/report/reportconst"
	istorage "github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// createReport registers a fresh claim with the agreement and reports the
// passed outcome for it, returning the report ID.
func (env *reportEnv) createReport(t *testing.T, success bool) []byte {
	key := randomClaimKey()
	env.agreementInvoker(env.submitter).Invoke(t, stackitem.Null{}, "addClaim", key)

	env.reportInvoker(env.submitter).Invoke(t, stackitem.Null{}, "makeReport",
		env.agreementHash, key, success)

	return reportID(env.agreementHash, key, env.submitter.ScriptHash())
}

func (env *reportEnv) challenge(t *testing.T, id []byte, challenger neotest.Signer, amount int64) {
	env.reportInvoker(challenger).Invoke(t, stackitem.Null{}, "challengeReport",
		id, challenger.ScriptHash(), amount, evidenceRef(id))
}

func (env *reportEnv) confirm(t *testing.T, id []byte, supporter neotest.Signer, amount int64) {
	env.reportInvoker(supporter).Invoke(t, stackitem.Null{}, "confirmReport",
		id, supporter.ScriptHash(), amount, "")
}

// openDispute drives a fresh report into the Disputed state and returns the
// report ID together with the challenger and supporter accounts.
func (env *reportEnv) openDispute(t *testing.T, success bool) ([]byte, neotest.Signer, neotest.Signer) {
	id := env.createReport(t, success)

	challenger := env.e.NewAccount(t)
	supporter := env.e.NewAccount(t)

	env.challenge(t, id, challenger, challengeTotal)
	env.confirm(t, id, supporter, challengeTotal)

	return id, challenger, supporter
}

func TestMakeReport(t *testing.T) {
	env := newReportEnv(t)

	key := randomClaimKey()
	env.agreementInvoker(env.submitter).Invoke(t, stackitem.Null{}, "addClaim", key)

	inv := env.reportInvoker(env.submitter)
	inv.Invoke(t, stackitem.Null{}, "makeReport", env.agreementHash, key, true)

	id := reportID(env.agreementHash, key, env.submitter.ScriptHash())
	rep := env.reportState(t, id)
	require.EqualValues(t, reportconst.StatusCreated, rep.status)
	require.Equal(t, env.agreementHash.BytesBE(), rep.agreement)
	require.Equal(t, key, rep.key)
	require.Equal(t, env.submitter.ScriptHash().BytesBE(), rep.submitter)
	require.True(t, rep.success)
	require.Zero(t, rep.roundCount)
	require.EqualValues(t, reportconst.PartyNone, rep.ruling)

	t.Run("duplicate", func(t *testing.T) {
		inv.InvokeFail(t, "report already exists", "makeReport",
			env.agreementHash, key, false)
	})

	t.Run("unknown claim", func(t *testing.T) {
		inv.InvokeFail(t, "claim not found", "makeReport",
			env.agreementHash, randomClaimKey(), true)
	})

	t.Run("not the submitter", func(t *testing.T) {
		stranger := env.e.NewAccount(t)
		strangerKey := randomClaimKey()
		env.agreementInvoker(env.submitter).Invoke(t, stackitem.Null{}, "addClaim", strangerKey)

		env.reportInvoker(stranger).InvokeFail(t, "not authorized as submitter",
			"makeReport", env.agreementHash, strangerKey, true)
	})
}

func TestChallengeReport(t *testing.T) {
	env := newReportEnv(t)
	id := env.createReport(t, true)
	challenger := env.e.NewAccount(t)

	t.Run("underfunded", func(t *testing.T) {
		env.reportInvoker(challenger).InvokeFail(t, "insufficient deposit",
			"challengeReport", id, challenger.ScriptHash(), int64(challengeTotal-1), "")
	})

	env.challenge(t, id, challenger, challengeTotal)

	rep := env.reportState(t, id)
	require.EqualValues(t, reportconst.StatusChallenged, rep.status)
	require.Equal(t, challenger.ScriptHash().BytesBE(), rep.challenger)
	require.EqualValues(t, 1, rep.roundCount)

	round := env.roundState(t, id, 0)
	require.EqualValues(t, challengeTotal, round.paidFees[reportconst.PartyChallenger])
	require.Zero(t, round.paidFees[reportconst.PartySupporter])
	require.True(t, round.hasPaid[reportconst.PartyChallenger])
	require.False(t, round.hasPaid[reportconst.PartySupporter])
	require.EqualValues(t, challengeTotal, round.feeRewards)

	// the contract escrows exactly the required total
	require.EqualValues(t, challengeTotal, gasBalance(env.e, env.reportHash).Int64())

	t.Run("already challenged", func(t *testing.T) {
		env.reportInvoker(challenger).InvokeFail(t, "invalid report status",
			"challengeReport", id, challenger.ScriptHash(), int64(challengeTotal), "")
	})

	t.Run("window over", func(t *testing.T) {
		late := env.createReport(t, true)
		advanceTime(t, env.e, executionTimeout+2000)

		env.reportInvoker(challenger).InvokeFail(t, "challenge window is over",
			"challengeReport", late, challenger.ScriptHash(), int64(challengeTotal), "")
	})
}

// An overpaying challenger is charged exactly the required total: the excess
// comes back in the same transaction, so the balance goes down by the total
// plus transaction fees only.
func TestChallengeOverpaymentRefund(t *testing.T) {
	env := newReportEnv(t)
	id := env.createReport(t, true)
	challenger := env.e.NewAccount(t)

	inv := env.reportInvoker(challenger)
	tx := inv.PrepareInvoke(t, "challengeReport",
		id, challenger.ScriptHash(), int64(challengeTotal+1_0000_0000), "")

	before := gasBalance(env.e, challenger.ScriptHash())
	env.e.AddNewBlock(t, tx)
	env.e.CheckHalt(t, tx.Hash(), stackitem.Null{})
	after := gasBalance(env.e, challenger.ScriptHash())

	spent := new(big.Int).Sub(before, after)
	fees := big.NewInt(tx.SystemFee + tx.NetworkFee)
	require.Equal(t, big.NewInt(challengeTotal), new(big.Int).Sub(spent, fees))

	require.EqualValues(t, challengeTotal, gasBalance(env.e, env.reportHash).Int64())
}

func TestConfirmReport(t *testing.T) {
	env := newReportEnv(t)
	id := env.createReport(t, true)

	challenger := env.e.NewAccount(t)
	supporter := env.e.NewAccount(t)

	t.Run("nothing to confirm", func(t *testing.T) {
		env.reportInvoker(supporter).InvokeFail(t, "invalid report status",
			"confirmReport", id, supporter.ScriptHash(), int64(challengeTotal), "")
	})

	env.challenge(t, id, challenger, challengeTotal)

	t.Run("underfunded", func(t *testing.T) {
		env.reportInvoker(supporter).InvokeFail(t, "insufficient deposit",
			"confirmReport", id, supporter.ScriptHash(), int64(challengeTotal/2), "")
	})

	arbitratorBefore := gasBalance(env.e, env.arbitratorHash).Int64()
	env.confirm(t, id, supporter, challengeTotal)

	rep := env.reportState(t, id)
	require.EqualValues(t, reportconst.StatusDisputed, rep.status)
	require.Equal(t, supporter.ScriptHash().BytesBE(), rep.supporter)
	require.EqualValues(t, 1, rep.disputeID)
	require.EqualValues(t, 2, rep.roundCount)

	// the forwarded arbitration cost is debited from the round reward pool
	round := env.roundState(t, id, 0)
	require.True(t, round.hasPaid[reportconst.PartySupporter])
	require.True(t, round.hasPaid[reportconst.PartyChallenger])
	require.EqualValues(t, 2*challengeTotal-arbitrationPrice, round.feeRewards)

	next := env.roundState(t, id, 1)
	require.Zero(t, next.paidFees[reportconst.PartySupporter])
	require.Zero(t, next.paidFees[reportconst.PartyChallenger])
	require.Zero(t, next.feeRewards)

	require.EqualValues(t, 2*challengeTotal-arbitrationPrice,
		gasBalance(env.e, env.reportHash).Int64())
	require.EqualValues(t, arbitrationPrice,
		gasBalance(env.e, env.arbitratorHash).Int64()-arbitratorBefore)

	t.Run("window over", func(t *testing.T) {
		late := env.createReport(t, true)
		env.challenge(t, late, challenger, challengeTotal)
		advanceTime(t, env.e, executionTimeout+2000)

		env.reportInvoker(supporter).InvokeFail(t, "confirmation window is over",
			"confirmReport", late, supporter.ScriptHash(), int64(challengeTotal), "")
	})
}

// An unconfirmed challenge defeats the original claim: approval after the
// timeout inverts the reported outcome and the challenger gets the deposit
// back.
func TestApproveChallengedTimeout(t *testing.T) {
	env := newReportEnv(t)
	id := env.createReport(t, true)
	challenger := env.e.NewAccount(t)
	env.challenge(t, id, challenger, challengeTotal)

	inv := env.reportInvoker()

	t.Run("too early", func(t *testing.T) {
		inv.InvokeFail(t, "approve not yet available", "approveReport", id)
	})

	advanceTime(t, env.e, executionTimeout+2000)
	inv.Invoke(t, stackitem.Null{}, "approveReport", id)

	rep := env.reportState(t, id)
	require.EqualValues(t, reportconst.StatusResolved, rep.status)
	require.False(t, rep.success)
	require.EqualValues(t, reportconst.PartyNone, rep.ruling)

	t.Run("already resolved", func(t *testing.T) {
		inv.InvokeFail(t, "invalid report status", "approveReport", id)
	})

	// round 0 never reached full funding on both sides, so withdrawal is a
	// plain deposit return
	before := gasBalance(env.e, challenger.ScriptHash())
	inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
		challenger.ScriptHash(), id, int64(0))
	after := gasBalance(env.e, challenger.ScriptHash())

	require.Equal(t, big.NewInt(challengeTotal), new(big.Int).Sub(after, before))
	require.Zero(t, gasBalance(env.e, env.reportHash).Int64())

	t.Run("second withdrawal pays zero", func(t *testing.T) {
		before := gasBalance(env.e, challenger.ScriptHash())
		inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
			challenger.ScriptHash(), id, int64(0))
		require.Equal(t, before, gasBalance(env.e, challenger.ScriptHash()))
	})
}

func TestApproveUnchallengedAndValidate(t *testing.T) {
	env := newReportEnv(t)
	id := env.createReport(t, true)

	inv := env.reportInvoker()

	t.Run("validate unresolved", func(t *testing.T) {
		inv.InvokeFail(t, "report is not resolved", "validateReport", id)
	})

	advanceTime(t, env.e, executionTimeout+2000)
	inv.Invoke(t, stackitem.Null{}, "approveReport", id)

	rep := env.reportState(t, id)
	require.EqualValues(t, reportconst.StatusResolved, rep.status)
	require.True(t, rep.success)

	key := rep.key
	agr := env.e.CommitteeInvoker(env.agreementHash)
	agr.Invoke(t, false, "isValidated", key)

	inv.Invoke(t, stackitem.Null{}, "validateReport", id)
	agr.Invoke(t, true, "isValidated", key)
	require.True(t, env.reportState(t, id).registered)

	t.Run("one-shot", func(t *testing.T) {
		inv.InvokeFail(t, "promise already validated", "validateReport", id)
	})

	t.Run("unsuccessful report", func(t *testing.T) {
		failed := env.createReport(t, false)
		advanceTime(t, env.e, executionTimeout+2000)
		inv.Invoke(t, stackitem.Null{}, "approveReport", failed)

		inv.InvokeFail(t, "reported claim was not successful", "validateReport", failed)
	})
}

// A ruling for the challenger inverts the original claim: a report of success
// resolves as failure.
func TestRulingChallengerWins(t *testing.T) {
	env := newReportEnv(t)
	id, challenger, supporter := env.openDispute(t, true)

	arb := env.arbitratorInvoker()
	arb.Invoke(t, stackitem.Null{}, "giveRuling", int64(1), int64(reportconst.PartyChallenger))
	arb.Invoke(t, stackitem.Null{}, "executeRuling", int64(1))

	rep := env.reportState(t, id)
	require.EqualValues(t, reportconst.StatusResolved, rep.status)
	require.EqualValues(t, reportconst.PartyChallenger, rep.ruling)
	require.False(t, rep.success)

	// the whole round 0 pool goes to the challenger
	pool := int64(2*challengeTotal - arbitrationPrice)
	inv := env.reportInvoker()

	require.EqualValues(t, pool, testInvokeInt(t, inv, "amountWithdrawable",
		id, challenger.ScriptHash()))
	require.Zero(t, testInvokeInt(t, inv, "amountWithdrawable",
		id, supporter.ScriptHash()))

	before := gasBalance(env.e, challenger.ScriptHash())
	inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
		challenger.ScriptHash(), id, int64(0))
	require.Equal(t, big.NewInt(pool),
		new(big.Int).Sub(gasBalance(env.e, challenger.ScriptHash()), before))

	inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
		supporter.ScriptHash(), id, int64(0))
	inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
		challenger.ScriptHash(), id, int64(1))
	inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
		supporter.ScriptHash(), id, int64(1))

	require.Zero(t, gasBalance(env.e, env.reportHash).Int64())
}

// A refusal to rule forces the outcome to failure and splits the round pool
// between both sides proportionally to their paid fees.
func TestRulingRefused(t *testing.T) {
	env := newReportEnv(t)
	id, challenger, supporter := env.openDispute(t, true)

	arb := env.arbitratorInvoker()
	arb.Invoke(t, stackitem.Null{}, "giveRuling", int64(1), int64(reportconst.PartyNone))
	arb.Invoke(t, stackitem.Null{}, "executeRuling", int64(1))

	rep := env.reportState(t, id)
	require.EqualValues(t, reportconst.PartyNone, rep.ruling)
	require.False(t, rep.success)

	// pool = 2*total - arbitration cost, both sides paid the same, so each
	// side gets half of the pool
	half := int64(2*challengeTotal-arbitrationPrice) / 2
	inv := env.reportInvoker()

	for _, side := range []neotest.Signer{challenger, supporter} {
		before := gasBalance(env.e, side.ScriptHash())
		inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
			side.ScriptHash(), id, int64(0))
		require.Equal(t, big.NewInt(half),
			new(big.Int).Sub(gasBalance(env.e, side.ScriptHash()), before))
	}
}

func TestRuleAuthorization(t *testing.T) {
	env := newReportEnv(t)
	env.openDispute(t, true)

	env.reportInvoker().InvokeFail(t, "only arbitrator can provide a ruling",
		"rule", int64(1), int64(reportconst.PartySupporter))
}

func TestSubmitEvidence(t *testing.T) {
	env := newReportEnv(t)
	id := env.createReport(t, true)
	party := env.e.NewAccount(t)

	env.reportInvoker(party).Invoke(t, stackitem.Null{}, "submitEvidence",
		id, party.ScriptHash(), evidenceRef(id))

	t.Run("resolved report", func(t *testing.T) {
		advanceTime(t, env.e, executionTimeout+2000)
		env.reportInvoker().Invoke(t, stackitem.Null{}, "approveReport", id)

		env.reportInvoker(party).InvokeFail(t, "invalid report status",
			"submitEvidence", id, party.ScriptHash(), evidenceRef(id))
	})
}

func TestIterateReports(t *testing.T) {
	env := newReportEnv(t)
	first := env.createReport(t, true)
	second := env.createReport(t, false)

	s, err := env.reportInvoker().TestInvoke(t, "iterateReports")
	require.NoError(t, err)

	iter := s.Pop().Value().(*istorage.Iterator)
	seen := make(map[string]bool)
	for iter.Next() {
		pair := iter.Value().Value().([]stackitem.Item)
		seen[string(fieldBytes(t, pair[0]))] = true
	}

	require.Len(t, seen, 2)
	require.True(t, seen[string(first)])
	require.True(t, seen[string(second)])
}
