package progress

import "fmt"

// StorageError reports a persistence fault while reading or writing a
// user's progress document. The store never retries; callers decide.
type StorageError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("progress %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
