package vm

import (
	"errors"
	"fmt"

	"github.com/NethermindEth/starkstate/core/felt"
)

var (
	// ErrNonceOverflow is returned by IncrementNonce when the contract nonce
	// is the maximum field element.
	ErrNonceOverflow = errors.New("nonce overflow")
	// ErrOldBlockHashNotProvided is returned by the block hash oracle when
	// the requested hash is not in the backend, or the storage key is not a
	// valid block number.
	ErrOldBlockHashNotProvided = errors.New("old block hash not provided")
)

// UndeclaredClassError is returned when a class or compiled class hash
// lookup finds nothing. Unlike storage and nonces, class lookups have no
// zero default.
type UndeclaredClassError struct {
	ClassHash felt.Felt
}

func (e UndeclaredClassError) Error() string {
	return fmt.Sprintf("undeclared class %s", &e.ClassHash)
}

// StateReadError wraps a backend I/O failure. It is fatal to the execution
// that hit it and is never retried.
type StateReadError struct {
	Operation string
	Key       string
	Cause     error
}

func (e StateReadError) Error() string {
	return fmt.Sprintf("state read %s %s: %v", e.Operation, e.Key, e.Cause)
}

func (e StateReadError) Unwrap() error {
	return e.Cause
}

func stateReadError(operation string, key fmt.Stringer, cause error) StateReadError {
	return StateReadError{
		Operation: operation,
		Key:       key.String(),
		Cause:     cause,
	}
}
