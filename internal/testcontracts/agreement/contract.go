// Package agreement implements a minimal impact-agreement contract for
// tests: a claim registry with a single authorized submitter that records
// which promises were validated.
package agreement

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	submitterKey = 's'

	claimPrefix     = 'c'
	validatedPrefix = 'v'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.([]any)
	storage.Put(storage.GetContext(), submitterKey, args[0].(interop.Hash160))
}

// AuthorizedSubmitter returns the account allowed to report on this
// agreement's claims.
func AuthorizedSubmitter() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), submitterKey).(interop.Hash160)
}

// AddClaim registers a claim key. Submitter only.
func AddClaim(key []byte) {
	ctx := storage.GetContext()

	submitter := storage.Get(ctx, submitterKey).(interop.Hash160)
	if !runtime.CheckWitness(submitter) {
		panic("submitter witness check failed")
	}

	storage.Put(ctx, claimKey(key), []byte{1})
}

// ClaimExists returns whether the claim key is registered.
func ClaimExists(key []byte) bool {
	return storage.Get(storage.GetReadOnlyContext(), claimKey(key)) != nil
}

// ValidatePromise records that the promise behind the claim was judged
// fulfilled. The caller contract is stored for inspection.
func ValidatePromise(key []byte) {
	ctx := storage.GetContext()

	if storage.Get(ctx, claimKey(key)) == nil {
		panic("claim not found")
	}

	storage.Put(ctx, validatedKey(key), runtime.GetCallingScriptHash())
}

// IsValidated returns whether the claim's promise was validated.
func IsValidated(key []byte) bool {
	return storage.Get(storage.GetReadOnlyContext(), validatedKey(key)) != nil
}

func claimKey(key []byte) []byte {
	return append([]byte{claimPrefix}, key...)
}

func validatedKey(key []byte) []byte {
	return append([]byte{validatedPrefix}, key...)
}
