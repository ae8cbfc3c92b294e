package domain

import "fmt"

// ProviderError reports a failed search call. The driver tolerates these at
// query granularity: the query's results are treated as empty and the run
// continues.
type ProviderError struct {
	Provider string
	Query    string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: query %q: %v", e.Provider, e.Query, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// StoreError reports a state store failure other than a version conflict.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("state store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ConflictError means the store rejected a write because the remote version
// advanced since it was read (or a create raced an existing key). Surfaced
// distinctly so operators can tell "lost the race" from "store unreachable".
type ConflictError struct {
	Key             string
	ExpectedVersion string
	Err             error
}

func (e *ConflictError) Error() string {
	if e.ExpectedVersion == "" {
		return fmt.Sprintf("state store: create of %s conflicted with an existing key", e.Key)
	}
	return fmt.Sprintf("state store: version %s of %s is stale", e.ExpectedVersion, e.Key)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// NotifyError reports a notification transport failure. Fatal for the run:
// state is not persisted after a failed send.
type NotifyError struct {
	Transport string
	Err       error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("notify via %s: %v", e.Transport, e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }
