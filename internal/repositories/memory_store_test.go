package repositories

import (
	"context"
	"strconv"
	"sync"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if v, err := store.Read(ctx, "user-registry"); err != nil || v != nil {
		t.Fatalf("missing key should read as (nil, nil), got (%q, %v)", v, err)
	}

	if err := store.Write(ctx, "user-registry", []byte(`[]`)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	v, err := store.Read(ctx, "user-registry")
	if err != nil || string(v) != `[]` {
		t.Fatalf("Read after Write = (%q, %v)", v, err)
	}

	if err := store.Delete(ctx, "user-registry"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if v, _ := store.Read(ctx, "user-registry"); v != nil {
		t.Fatalf("Delete should remove the key, got %q", v)
	}
}

// Concurrent read-modify-writes through Update must not lose increments.
func TestMemoryStoreUpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Write(ctx, "counter", []byte("0"))

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, "counter", func(current []byte) ([]byte, error) {
				n, err := strconv.Atoi(string(current))
				if err != nil {
					return nil, err
				}
				return []byte(strconv.Itoa(n + 1)), nil
			})
		}()
	}
	wg.Wait()

	v, _ := store.Read(ctx, "counter")
	if string(v) != strconv.Itoa(writers) {
		t.Fatalf("lost updates: counter = %s, want %d", v, writers)
	}
}
