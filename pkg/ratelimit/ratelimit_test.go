package ratelimit

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAllowBurstThenLimit(t *testing.T) {
	k := New(Config{PerMinute: 1, Burst: 2})

	for i := 0; i < 2; i++ {
		if err := k.Allow("alice"); err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
	}
	if err := k.Allow("alice"); !errors.Is(err, ErrLimited) {
		t.Fatalf("err = %v, want ErrLimited", err)
	}

	// Keys are independent.
	if err := k.Allow("bob"); err != nil {
		t.Fatalf("bob limited: %v", err)
	}
}

func TestDisabledLimiterAlwaysAllows(t *testing.T) {
	k := New(Config{})
	for i := 0; i < 100; i++ {
		if err := k.Allow("alice"); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
}

func TestIdleKeysExpire(t *testing.T) {
	k := New(Config{PerMinute: 1, Burst: 1, TTL: 20 * time.Millisecond})
	if err := k.Allow("alice"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := k.Allow("alice"); !errors.Is(err, ErrLimited) {
		t.Fatalf("second call err = %v, want ErrLimited", err)
	}

	time.Sleep(60 * time.Millisecond)
	if err := k.Allow("alice"); err != nil {
		t.Errorf("after TTL: %v, want a fresh bucket", err)
	}
}

func TestConcurrentFirstUseSharesLimiter(t *testing.T) {
	k := New(Config{PerMinute: 1, Burst: 1})

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if k.Allow("alice") == nil {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 1 {
		t.Errorf("allowed = %d, want 1", allowed)
	}
}
