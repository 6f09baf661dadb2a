package repositories

import "context"

// Persisted collections, string-addressed. Values are JSON documents:
// user-registry and all-bookings hold arrays, current-session holds a
// single object.
const (
	KeyUserRegistry   = "user-registry"
	KeyCurrentSession = "current-session"
	KeyAllBookings    = "all-bookings"
)

// Store is the durable key-value capability the session and booking services
// are built on. Read returns (nil, nil) for an absent key. Update applies fn
// to the current value atomically per key: the read, fn and write happen
// under a lock (memory) or a row lock in a transaction (MySQL), so two
// status changes racing on the same collection cannot lose each other's
// write. When fn returns an error nothing is written and the error is
// returned unchanged.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
	Delete(ctx context.Context, key string) error
}
