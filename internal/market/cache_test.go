package market

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCache_GetOrFetch(t *testing.T) {
	cache := NewCache(nil)

	v, err := cache.GetOrFetch("k", func() (any, error) { return 42, nil })
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %v", v)
	}

	// Second call must serve the memoized value.
	v, err = cache.GetOrFetch("k", func() (any, error) {
		t.Error("fetch invoked for cached key")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %v", v)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", cache.Len())
	}
}

func TestCache_SingleFlight(t *testing.T) {
	cache := NewCache(nil)

	var calls atomic.Int32
	fetch := func() (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const callers = 50
	var wg sync.WaitGroup
	results := make([]any, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.GetOrFetch("same-key", fetch)
		}(i)
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly 1 fetch, got %d", got)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Errorf("caller %d: unexpected error %v", i, errs[i])
		}
		if results[i] != "value" {
			t.Errorf("caller %d: expected \"value\", got %v", i, results[i])
		}
	}
}

func TestCache_ErrorsNotCached(t *testing.T) {
	cache := NewCache(nil)
	boom := errors.New("upstream down")

	var calls atomic.Int32
	_, err := cache.GetOrFetch("k", func() (any, error) {
		calls.Add(1)
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("failed fetch must not populate the cache, got %d entries", cache.Len())
	}

	// The next call for the key retries and its success is memoized.
	v, err := cache.GetOrFetch("k", func() (any, error) {
		calls.Add(1)
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if v != "ok" {
		t.Errorf("expected \"ok\", got %v", v)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 fetches, got %d", calls.Load())
	}

	v, _ = cache.GetOrFetch("k", func() (any, error) {
		calls.Add(1)
		return nil, errors.New("should not run")
	})
	if v != "ok" || calls.Load() != 2 {
		t.Errorf("expected memoized \"ok\" with 2 fetches, got %v / %d", v, calls.Load())
	}
}

func TestCache_DistinctKeys(t *testing.T) {
	cache := NewCache(nil)

	var calls atomic.Int32
	for _, key := range []string{"a", "b", "c"} {
		if _, err := cache.GetOrFetch(key, func() (any, error) {
			calls.Add(1)
			return key, nil
		}); err != nil {
			t.Fatalf("GetOrFetch(%s) failed: %v", key, err)
		}
	}

	if calls.Load() != 3 {
		t.Errorf("expected 3 fetches, got %d", calls.Load())
	}
	if cache.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", cache.Len())
	}
}

func TestKey(t *testing.T) {
	if got := Key("market_chart", "bitcoin", "30"); got != "market_chart:bitcoin:30" {
		t.Errorf("unexpected key %q", got)
	}
	if got := Key("coin_detail", "ethereum"); got != "coin_detail:ethereum" {
		t.Errorf("unexpected key %q", got)
	}
}
