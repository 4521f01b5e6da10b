package tests

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// randomClaimKey returns a fresh opaque claim identifier.
func randomClaimKey() []byte {
	id := uuid.New()
	return id[:]
}

// evidenceRef builds a human-readable evidence reference for a report the way
// off-chain clients do, from the base58 form of its ID.
func evidenceRef(reportID []byte) string {
	return "ipfs://evidence/" + base58.Encode(reportID)
}

// reportID mirrors the contract-side identifier derivation.
func reportID(agreement util.Uint160, key []byte, submitter util.Uint160) []byte {
	data := agreement.BytesBE()
	data = append(data, key...)
	data = append(data, submitter.BytesBE()...)
	h := sha256.Sum256(data)
	return h[:]
}

func itemFields(t *testing.T, inv *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	s, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)
	fields, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	return fields
}

func fieldInt(t *testing.T, item stackitem.Item) int64 {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func fieldBool(t *testing.T, item stackitem.Item) bool {
	v, err := item.TryBool()
	require.NoError(t, err)
	return v
}

func fieldBytes(t *testing.T, item stackitem.Item) []byte {
	v, err := item.TryBytes()
	require.NoError(t, err)
	return v
}

func intArray(t *testing.T, item stackitem.Item) []int64 {
	arr, ok := item.Value().([]stackitem.Item)
	require.True(t, ok)
	res := make([]int64, len(arr))
	for i := range arr {
		res[i] = fieldInt(t, arr[i])
	}
	return res
}

func boolArray(t *testing.T, item stackitem.Item) []bool {
	arr, ok := item.Value().([]stackitem.Item)
	require.True(t, ok)
	res := make([]bool, len(arr))
	for i := range arr {
		res[i] = fieldBool(t, arr[i])
	}
	return res
}

func testInvokeInt(t *testing.T, inv *neotest.ContractInvoker, method string, args ...any) int64 {
	s, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)
	v, err := s.Top().Item().TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

type reportState struct {
	agreement      []byte
	key            []byte
	submitter      []byte
	status         int64
	disputeID      int64
	lastActionTime int64
	supporter      []byte
	challenger     []byte
	roundCount     int64
	ruling         int64
	success        bool
	registered     bool
}

func (env *reportEnv) reportState(t *testing.T, id []byte) reportState {
	fields := itemFields(t, env.reportInvoker(), "getReport", id)
	require.Len(t, fields, 12)

	return reportState{
		agreement:      fieldBytes(t, fields[0]),
		key:            fieldBytes(t, fields[1]),
		submitter:      fieldBytes(t, fields[2]),
		status:         fieldInt(t, fields[3]),
		disputeID:      fieldInt(t, fields[4]),
		lastActionTime: fieldInt(t, fields[5]),
		supporter:      fieldBytes(t, fields[6]),
		challenger:     fieldBytes(t, fields[7]),
		roundCount:     fieldInt(t, fields[8]),
		ruling:         fieldInt(t, fields[9]),
		success:        fieldBool(t, fields[10]),
		registered:     fieldBool(t, fields[11]),
	}
}

type roundState struct {
	paidFees   []int64
	hasPaid    []bool
	feeRewards int64
}

func (env *reportEnv) roundState(t *testing.T, id []byte, index int64) roundState {
	fields := itemFields(t, env.reportInvoker(), "getRound", id, index)
	require.Len(t, fields, 3)

	return roundState{
		paidFees:   intArray(t, fields[0]),
		hasPaid:    boolArray(t, fields[1]),
		feeRewards: fieldInt(t, fields[2]),
	}
}

func gasBalance(e *neotest.Executor, h util.Uint160) *big.Int {
	return e.Chain.GetUtilityTokenBalance(h)
}

// advanceTime adds a block moved delta milliseconds past the current top one.
func advanceTime(t *testing.T, e *neotest.Executor, delta uint64) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp = e.TopBlock(t).Timestamp + delta
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}
