package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func TestParameterGetters(t *testing.T) {
	env := newReportEnv(t)
	inv := env.reportInvoker()

	inv.Invoke(t, env.e.CommitteeHash.BytesBE(), "governor")
	inv.Invoke(t, env.arbitratorHash.BytesBE(), "arbitrator")
	inv.Invoke(t, int64(executionTimeout), "executionTimeout")
	inv.Invoke(t, int64(baseDeposit), "baseDeposit")
	inv.Invoke(t, int64(sharedStakeMultiplier), "sharedStakeMultiplier")
	inv.Invoke(t, int64(winnerStakeMultiplier), "winnerStakeMultiplier")
	inv.Invoke(t, int64(loserStakeMultiplier), "loserStakeMultiplier")
}

func TestChangeParameters(t *testing.T) {
	env := newReportEnv(t)
	stranger := env.e.NewAccount(t)

	t.Run("governor witness required", func(t *testing.T) {
		for _, method := range []string{
			"changeBaseDeposit",
			"changeSharedStakeMultiplier",
			"changeWinnerStakeMultiplier",
			"changeLoserStakeMultiplier",
			"changeExecutionTimeout",
		} {
			env.reportInvoker(stranger).InvokeFail(t,
				"governor witness check failed", method, int64(1))
		}
	})

	inv := env.reportInvoker()
	inv.Invoke(t, stackitem.Null{}, "changeBaseDeposit", int64(baseDeposit*2))
	inv.Invoke(t, int64(baseDeposit*2), "baseDeposit")

	inv.Invoke(t, stackitem.Null{}, "changeWinnerStakeMultiplier", int64(4500))
	inv.Invoke(t, int64(4500), "winnerStakeMultiplier")

	t.Run("timeout must be positive", func(t *testing.T) {
		inv.InvokeFail(t, "execution timeout must be positive",
			"changeExecutionTimeout", int64(0))
	})
	inv.Invoke(t, stackitem.Null{}, "changeExecutionTimeout", int64(executionTimeout/2))
	inv.Invoke(t, int64(executionTimeout/2), "executionTimeout")
}

func TestChangeGovernor(t *testing.T) {
	env := newReportEnv(t)
	successor := env.e.NewAccount(t)

	t.Run("bad account", func(t *testing.T) {
		env.reportInvoker().InvokeFail(t, "incorrect length of account script hash",
			"changeGovernor", []byte{1, 2, 3})
	})

	env.reportInvoker().Invoke(t, stackitem.Null{}, "changeGovernor",
		successor.ScriptHash())
	env.reportInvoker().Invoke(t, successor.ScriptHash().BytesBE(), "governor")

	// the previous governor has no say anymore
	env.reportInvoker().InvokeFail(t, "governor witness check failed",
		"changeBaseDeposit", int64(1))

	env.reportInvoker(successor).Invoke(t, stackitem.Null{},
		"changeBaseDeposit", int64(1))
	env.reportInvoker().Invoke(t, int64(1), "baseDeposit")
}

func TestUpdateAuth(t *testing.T) {
	env := newReportEnv(t)
	stranger := env.e.NewAccount(t)

	env.reportInvoker(stranger).InvokeFail(t, "governor witness check failed",
		"update", []byte{}, []byte{}, nil)
}

func TestVersion(t *testing.T) {
	env := newReportEnv(t)
	env.reportInvoker().Invoke(t, int64(1_000_000), "version")
}
