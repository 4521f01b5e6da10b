package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const (
	reportPath     = "../contracts/report"
	arbitratorPath = "../internal/testcontracts/arbitrator"
	agreementPath  = "../internal/testcontracts/agreement"
)

// Contract parameters shared by the tests. All GAS amounts are in the native
// 8-decimal precision.
const (
	arbitrationPrice = 1_0000_0000
	appealPrice      = 2_0000_0000
	appealWindow     = 3_600_000 // ms

	executionTimeout = 3_600_000 // ms
	baseDeposit      = 5000_0000

	sharedStakeMultiplier = 5000 // 50%
	winnerStakeMultiplier = 3000 // 30%
	loserStakeMultiplier  = 7000 // 70%

	// challenge and confirmation totals under the parameters above:
	// arbitration cost + 50% shared stake + base deposit.
	challengeTotal = arbitrationPrice + arbitrationPrice/2 + baseDeposit
)

// reportEnv groups everything a report contract test needs: the executor, the
// deployed contract hashes and the account authorized to submit reports.
type reportEnv struct {
	e *neotest.Executor

	reportHash     util.Uint160
	arbitratorHash util.Uint160
	agreementHash  util.Uint160

	submitter neotest.Signer
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deployArbitratorContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, arbitratorPath,
		path.Join(arbitratorPath, "config.yml"))

	args := make([]any, 4)
	args[0] = e.CommitteeHash
	args[1] = int64(arbitrationPrice)
	args[2] = int64(appealPrice)
	args[3] = int64(appealWindow)

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployAgreementContract(t *testing.T, e *neotest.Executor, submitter util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, agreementPath,
		path.Join(agreementPath, "config.yml"))

	args := make([]any, 1)
	args[0] = submitter

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployReportContract(t *testing.T, e *neotest.Executor, arbitrator util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, reportPath,
		path.Join(reportPath, "config.yml"))

	args := make([]any, 8)
	args[0] = e.CommitteeHash // governor
	args[1] = arbitrator
	args[2] = []byte{}
	args[3] = int64(executionTimeout)
	args[4] = int64(baseDeposit)
	args[5] = int64(sharedStakeMultiplier)
	args[6] = int64(winnerStakeMultiplier)
	args[7] = int64(loserStakeMultiplier)

	e.DeployContract(t, c, args)
	return c.Hash
}

func newReportEnv(t *testing.T) *reportEnv {
	e := newExecutor(t)

	submitter := e.NewAccount(t)
	arbitratorHash := deployArbitratorContract(t, e)
	agreementHash := deployAgreementContract(t, e, submitter.ScriptHash())
	reportHash := deployReportContract(t, e, arbitratorHash)

	return &reportEnv{
		e:              e,
		reportHash:     reportHash,
		arbitratorHash: arbitratorHash,
		agreementHash:  agreementHash,
		submitter:      submitter,
	}
}

func (env *reportEnv) reportInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	if len(signers) == 0 {
		return env.e.CommitteeInvoker(env.reportHash)
	}
	return env.e.NewInvoker(env.reportHash, signers...)
}

func (env *reportEnv) arbitratorInvoker() *neotest.ContractInvoker {
	return env.e.CommitteeInvoker(env.arbitratorHash)
}

func (env *reportEnv) agreementInvoker(signer neotest.Signer) *neotest.ContractInvoker {
	return env.e.NewInvoker(env.agreementHash, signer)
}
