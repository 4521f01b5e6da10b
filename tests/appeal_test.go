package tests

import (
	"math/big"
	"testing"

	"github.com/kleros/Alice-Integration/contracts/report/reportconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// Appeal totals with the deployment multipliers: appeal price plus the
// side's basis-point stake.
const (
	winnerAppealTotal = appealPrice + appealPrice*winnerStakeMultiplier/10000
	loserAppealTotal  = appealPrice + appealPrice*loserStakeMultiplier/10000
	sharedAppealTotal = appealPrice + appealPrice*sharedStakeMultiplier/10000
)

func (env *reportEnv) fundAppeal(t *testing.T, id []byte, side int64, contributor neotest.Signer, amount int64) {
	env.reportInvoker(contributor).Invoke(t, stackitem.Null{}, "fundAppeal",
		id, side, contributor.ScriptHash(), amount)
}

func TestFundAppealValidation(t *testing.T) {
	env := newReportEnv(t)
	id, challenger, _ := env.openDispute(t, true)

	inv := env.reportInvoker(challenger)

	t.Run("invalid party", func(t *testing.T) {
		inv.InvokeFail(t, "invalid party", "fundAppeal",
			id, int64(reportconst.PartyNone), challenger.ScriptHash(), int64(appealPrice))
	})

	t.Run("no appealable ruling yet", func(t *testing.T) {
		inv.InvokeFail(t, "appeal window is closed", "fundAppeal",
			id, int64(reportconst.PartyChallenger), challenger.ScriptHash(), int64(appealPrice))
	})

	t.Run("not disputed", func(t *testing.T) {
		other := env.createReport(t, true)
		inv.InvokeFail(t, "invalid report status", "fundAppeal",
			other, int64(reportconst.PartyChallenger), challenger.ScriptHash(), int64(appealPrice))
	})

	t.Run("window expired", func(t *testing.T) {
		env.arbitratorInvoker().Invoke(t, stackitem.Null{}, "giveRuling",
			int64(1), int64(reportconst.PartySupporter))
		advanceTime(t, env.e, appealWindow+2000)

		inv.InvokeFail(t, "appeal window is closed", "fundAppeal",
			id, int64(reportconst.PartyChallenger), challenger.ScriptHash(), int64(loserAppealTotal))
	})
}

// The losing side can only complete its funding in the first half of the
// appeal window, the winning side has the whole window.
func TestFundAppealLoserWindow(t *testing.T) {
	env := newReportEnv(t)
	id, challenger, supporter := env.openDispute(t, true)

	env.arbitratorInvoker().Invoke(t, stackitem.Null{}, "giveRuling",
		int64(1), int64(reportconst.PartySupporter))
	advanceTime(t, env.e, appealWindow/2+60_000)

	env.reportInvoker(challenger).InvokeFail(t, "loser funding window is over",
		"fundAppeal", id, int64(reportconst.PartyChallenger),
		challenger.ScriptHash(), int64(loserAppealTotal))

	env.fundAppeal(t, id, int64(reportconst.PartySupporter), supporter, winnerAppealTotal)
	round := env.roundState(t, id, 1)
	require.True(t, round.hasPaid[reportconst.PartySupporter])
}

// Full funding on both sides raises an appeal with the arbitrator and opens
// the next round. The loser side is funded by two contributors, the second of
// whom overpays and is refunded the excess.
func TestFundAppealPromotion(t *testing.T) {
	env := newReportEnv(t)
	id, challenger, supporter := env.openDispute(t, true)

	env.arbitratorInvoker().Invoke(t, stackitem.Null{}, "giveRuling",
		int64(1), int64(reportconst.PartySupporter))

	helper := env.e.NewAccount(t)
	firstPart := int64(appealPrice)
	secondPart := int64(loserAppealTotal) - firstPart

	env.fundAppeal(t, id, int64(reportconst.PartyChallenger), challenger, firstPart)

	round := env.roundState(t, id, 1)
	require.EqualValues(t, firstPart, round.paidFees[reportconst.PartyChallenger])
	require.False(t, round.hasPaid[reportconst.PartyChallenger])

	// overpay by 1 GAS, only the missing part is taken
	env.fundAppeal(t, id, int64(reportconst.PartyChallenger), helper, secondPart+1_0000_0000)

	round = env.roundState(t, id, 1)
	require.EqualValues(t, loserAppealTotal, round.paidFees[reportconst.PartyChallenger])
	require.True(t, round.hasPaid[reportconst.PartyChallenger])
	require.EqualValues(t, secondPart, testInvokeInt(t, env.reportInvoker(),
		"getContribution", id, int64(1), helper.ScriptHash(), int64(reportconst.PartyChallenger)))

	arbitratorBefore := gasBalance(env.e, env.arbitratorHash).Int64()
	env.fundAppeal(t, id, int64(reportconst.PartySupporter), supporter, winnerAppealTotal)

	rep := env.reportState(t, id)
	require.EqualValues(t, 3, rep.roundCount)

	// the appeal price went to the arbitrator, the stakes stay in the pool
	round = env.roundState(t, id, 1)
	require.EqualValues(t, loserAppealTotal+winnerAppealTotal-appealPrice, round.feeRewards)
	require.EqualValues(t, appealPrice,
		gasBalance(env.e, env.arbitratorHash).Int64()-arbitratorBefore)

	fresh := env.roundState(t, id, 2)
	require.Zero(t, fresh.paidFees[reportconst.PartySupporter])
	require.Zero(t, fresh.paidFees[reportconst.PartyChallenger])

	arb := env.arbitratorInvoker()
	arb.Invoke(t, int64(1), "appealCount", int64(1))

	// raising the appeal closed the window until the next ruling
	env.reportInvoker(supporter).InvokeFail(t, "appeal window is closed",
		"fundAppeal", id, int64(reportconst.PartySupporter),
		supporter.ScriptHash(), int64(winnerAppealTotal))
}

// When the arbitrator refuses to rule, neither side is winning: both pay the
// shared total and neither is restricted to the first half of the window.
func TestFundAppealSharedStake(t *testing.T) {
	env := newReportEnv(t)
	id, challenger, supporter := env.openDispute(t, true)

	env.arbitratorInvoker().Invoke(t, stackitem.Null{}, "giveRuling",
		int64(1), int64(reportconst.PartyNone))
	advanceTime(t, env.e, appealWindow/2+60_000)

	// the winner total is short of the shared one, so it must not complete
	// the side
	env.fundAppeal(t, id, int64(reportconst.PartyChallenger), challenger, winnerAppealTotal)

	round := env.roundState(t, id, 1)
	require.EqualValues(t, winnerAppealTotal, round.paidFees[reportconst.PartyChallenger])
	require.False(t, round.hasPaid[reportconst.PartyChallenger])

	env.fundAppeal(t, id, int64(reportconst.PartyChallenger), challenger,
		sharedAppealTotal-winnerAppealTotal)
	round = env.roundState(t, id, 1)
	require.True(t, round.hasPaid[reportconst.PartyChallenger])

	env.fundAppeal(t, id, int64(reportconst.PartySupporter), supporter, sharedAppealTotal)

	rep := env.reportState(t, id)
	require.EqualValues(t, 3, rep.roundCount)

	round = env.roundState(t, id, 1)
	require.EqualValues(t, sharedAppealTotal, round.paidFees[reportconst.PartySupporter])
	require.EqualValues(t, 2*sharedAppealTotal-appealPrice, round.feeRewards)
}

// A call for a side that already reached its total within an open window
// changes nothing and sends the whole amount back.
func TestFundAppealAlreadyFundedSide(t *testing.T) {
	env := newReportEnv(t)
	id, _, supporter := env.openDispute(t, true)

	env.arbitratorInvoker().Invoke(t, stackitem.Null{}, "giveRuling",
		int64(1), int64(reportconst.PartySupporter))
	env.fundAppeal(t, id, int64(reportconst.PartySupporter), supporter, winnerAppealTotal)

	round := env.roundState(t, id, 1)
	require.True(t, round.hasPaid[reportconst.PartySupporter])

	escrowBefore := gasBalance(env.e, env.reportHash)

	inv := env.reportInvoker(supporter)
	tx := inv.PrepareInvoke(t, "fundAppeal",
		id, int64(reportconst.PartySupporter), supporter.ScriptHash(), int64(1_0000_0000))

	before := gasBalance(env.e, supporter.ScriptHash())
	env.e.AddNewBlock(t, tx)
	env.e.CheckHalt(t, tx.Hash(), stackitem.Null{})
	after := gasBalance(env.e, supporter.ScriptHash())

	// only transaction fees are spent, the deposit came back in full
	spent := new(big.Int).Sub(before, after)
	require.Equal(t, big.NewInt(tx.SystemFee+tx.NetworkFee), spent)

	round = env.roundState(t, id, 1)
	require.EqualValues(t, winnerAppealTotal, round.paidFees[reportconst.PartySupporter])
	require.EqualValues(t, winnerAppealTotal, round.feeRewards)
	require.EqualValues(t, winnerAppealTotal, testInvokeInt(t, env.reportInvoker(),
		"getContribution", id, int64(1), supporter.ScriptHash(),
		int64(reportconst.PartySupporter)))
	require.Equal(t, escrowBefore, gasBalance(env.e, env.reportHash))
}

// If only one side fully funds the appeal round, the final ruling is forced
// in its favor no matter what the arbitrator decided.
func TestSingleFunderOverride(t *testing.T) {
	env := newReportEnv(t)
	id, _, supporter := env.openDispute(t, true)

	arb := env.arbitratorInvoker()
	arb.Invoke(t, stackitem.Null{}, "giveRuling", int64(1), int64(reportconst.PartyChallenger))

	// the supporter, currently losing, fully funds its side alone
	env.fundAppeal(t, id, int64(reportconst.PartySupporter), supporter, loserAppealTotal)

	advanceTime(t, env.e, appealWindow+2000)
	arb.Invoke(t, stackitem.Null{}, "executeRuling", int64(1))

	rep := env.reportState(t, id)
	require.EqualValues(t, reportconst.StatusResolved, rep.status)
	require.EqualValues(t, reportconst.PartySupporter, rep.ruling)
	require.True(t, rep.success)

	inv := env.reportInvoker()

	// round 0 pays the supporter the whole pool, round 1 never reached full
	// funding so the contribution comes straight back
	pool := int64(2*challengeTotal - arbitrationPrice)
	require.EqualValues(t, pool+loserAppealTotal, testInvokeInt(t, inv,
		"amountWithdrawable", id, supporter.ScriptHash()))

	before := gasBalance(env.e, supporter.ScriptHash())
	inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
		supporter.ScriptHash(), id, int64(0))
	inv.Invoke(t, stackitem.Null{}, "withdrawFeesAndRewards",
		supporter.ScriptHash(), id, int64(1))
	require.Equal(t, big.NewInt(pool+loserAppealTotal),
		new(big.Int).Sub(gasBalance(env.e, supporter.ScriptHash()), before))

	require.Zero(t, gasBalance(env.e, env.reportHash).Int64())
}
