// Package arbitrator implements an appealable arbitrator contract for tests.
// The operator gives rulings explicitly, disputes can be appealed within a
// fixed window, and executing a ruling relays it to the arbitrable contract
// that created the dispute.
package arbitrator

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type Dispute struct {
	Arbitrable        interop.Hash160
	Choices           int
	Ruling            int
	AppealPeriodStart int
	AppealPeriodEnd   int
	Appeals           int
	Executed          bool
}

const (
	ownerKey            = 'o'
	arbitrationPriceKey = 'p'
	appealPriceKey      = 'q'
	appealWindowKey     = 'w'
	counterKey          = 'i'

	disputePrefix = 'd'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.([]any)
	ctx := storage.GetContext()

	storage.Put(ctx, ownerKey, args[0].(interop.Hash160))
	storage.Put(ctx, arbitrationPriceKey, args[1].(int))
	storage.Put(ctx, appealPriceKey, args[2].(int))
	storage.Put(ctx, appealWindowKey, args[3].(int))
}

// ArbitrationCost returns the flat price of creating a dispute.
func ArbitrationCost(extraData []byte) int {
	return storage.Get(storage.GetReadOnlyContext(), arbitrationPriceKey).(int)
}

// AppealCost returns the flat price of appealing a dispute.
func AppealCost(disputeID int, extraData []byte) int {
	return storage.Get(storage.GetReadOnlyContext(), appealPriceKey).(int)
}

// CreateDispute registers a dispute on behalf of the calling arbitrable
// contract and returns its ID.
func CreateDispute(choices int, extraData []byte) int {
	ctx := storage.GetContext()

	id := 1
	if raw := storage.Get(ctx, counterKey); raw != nil {
		id = raw.(int) + 1
	}
	storage.Put(ctx, counterKey, id)

	d := Dispute{
		Arbitrable: runtime.GetCallingScriptHash(),
		Choices:    choices,
	}
	storage.Put(ctx, disputeKey(id), std.Serialize(d))

	return id
}

// GiveRuling stores an appealable ruling for the dispute and opens its appeal
// window. Operator only.
func GiveRuling(disputeID int, ruling int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	d := getDispute(ctx, disputeID)
	if ruling < 0 || ruling > d.Choices {
		panic("ruling out of range")
	}

	now := runtime.GetTime()
	d.Ruling = ruling
	d.AppealPeriodStart = now
	d.AppealPeriodEnd = now + storage.Get(ctx, appealWindowKey).(int)
	storage.Put(ctx, disputeKey(disputeID), std.Serialize(d))
}

// Appeal raises an appeal of the current ruling. It can be invoked only by
// the arbitrable contract that created the dispute. The appeal window closes
// until the next ruling.
func Appeal(disputeID int, extraData []byte) {
	ctx := storage.GetContext()

	d := getDispute(ctx, disputeID)
	if !runtime.GetCallingScriptHash().Equals(d.Arbitrable) {
		panic("only arbitrable can appeal")
	}

	d.Appeals = d.Appeals + 1
	d.AppealPeriodStart = 0
	d.AppealPeriodEnd = 0
	storage.Put(ctx, disputeKey(disputeID), std.Serialize(d))
}

// AppealPeriod returns the start and end timestamps of the current appeal
// window. Both are zero while no appealable ruling stands.
func AppealPeriod(disputeID int) []int {
	d := getDispute(storage.GetReadOnlyContext(), disputeID)
	return []int{d.AppealPeriodStart, d.AppealPeriodEnd}
}

// CurrentRuling returns the ruling as it currently stands.
func CurrentRuling(disputeID int) int {
	return getDispute(storage.GetReadOnlyContext(), disputeID).Ruling
}

// AppealCount returns how many times the dispute has been appealed.
func AppealCount(disputeID int) int {
	return getDispute(storage.GetReadOnlyContext(), disputeID).Appeals
}

// ExecuteRuling relays the standing ruling to the arbitrable contract.
// Operator only, once per dispute.
func ExecuteRuling(disputeID int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	d := getDispute(ctx, disputeID)
	if d.Executed {
		panic("ruling already executed")
	}

	d.Executed = true
	storage.Put(ctx, disputeKey(disputeID), std.Serialize(d))

	contract.Call(d.Arbitrable, "rule", contract.All, disputeID, d.Ruling)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if !runtime.GetCallingScriptHash().Equals(gas.Hash) {
		panic("arbitrator accepts GAS only")
	}
}

func checkOwner(ctx storage.Context) {
	owner := storage.Get(ctx, ownerKey).(interop.Hash160)
	if !runtime.CheckWitness(owner) {
		panic("owner witness check failed")
	}
}

func getDispute(ctx storage.Context, disputeID int) Dispute {
	data := storage.Get(ctx, disputeKey(disputeID))
	if data == nil {
		panic("dispute does not exist")
	}

	return std.Deserialize(data.([]byte)).(Dispute)
}

func disputeKey(disputeID int) []byte {
	return append([]byte{disputePrefix}, convert.ToBytes(disputeID)...)
}
