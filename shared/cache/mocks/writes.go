package mocks

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

// Writes collects the keys a service writes to the cache from its background
// goroutines, so a test can wait for them to land.
type Writes struct {
	keys chan string
}

func NewWrites() *Writes {
	return &Writes{keys: make(chan string, 64)}
}

// Record makes every Save, Delete and Clear on m succeed and report its key.
func (w *Writes) Record(m *MockRedisCache) {
	m.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
			w.keys <- key

			return nil
		}).
		AnyTimes()
	m.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) error {
			w.keys <- key

			return nil
		}).
		AnyTimes()
	m.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pattern string) error {
			w.keys <- pattern

			return nil
		}).
		AnyTimes()
}

// Wait blocks until one key starting with each prefix has been written. A key
// counts for the longest prefix it matches.
func (w *Writes) Wait(t *testing.T, prefixes ...string) {
	t.Helper()

	pending := append([]string(nil), prefixes...)
	timeout := time.After(time.Second)

	for len(pending) > 0 {
		select {
		case key := <-w.keys:
			match := -1

			for i, prefix := range pending {
				if strings.HasPrefix(key, prefix) && (match < 0 || len(prefix) > len(pending[match])) {
					match = i
				}
			}

			if match >= 0 {
				pending = append(pending[:match], pending[match+1:]...)
			}
		case <-timeout:
			t.Fatalf("cache writes not seen: %v", pending)

			return
		}
	}
}
