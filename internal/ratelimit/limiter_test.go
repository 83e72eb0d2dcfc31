package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestLimiter(limit int, window time.Duration) (*Limiter, *time.Time) {
	l := New(limit, window)
	current := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestBudgetExhaustion(t *testing.T) {
	l, _ := newTestLimiter(20, time.Minute)

	for i := 1; i <= 20; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("request 21 should be rejected")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("request 22 should be rejected")
	}
}

func TestWindowReset(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	l.Allow("ip")
	l.Allow("ip")
	if l.Allow("ip") {
		t.Fatal("budget should be exhausted")
	}

	*clock = clock.Add(61 * time.Second)
	if !l.Allow("ip") {
		t.Fatal("new window should start after expiry")
	}
}

func TestIdentitiesAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	if !l.Allow("a") {
		t.Fatal("first request for a should pass")
	}
	if !l.Allow("b") {
		t.Fatal("a's budget must not affect b")
	}
	if l.Allow("a") {
		t.Fatal("a is out of budget")
	}
}

func TestPruneExpiredBuckets(t *testing.T) {
	l, clock := newTestLimiter(1, time.Minute)

	for i := 0; i < pruneThreshold+1; i++ {
		l.Allow(fmt.Sprintf("ip-%d", i))
	}
	*clock = clock.Add(2 * time.Minute)
	l.Allow("fresh")

	l.mu.Lock()
	n := len(l.buckets)
	l.mu.Unlock()
	if n != 1 {
		t.Fatalf("expected expired buckets to be pruned, table size %d", n)
	}
}

func TestConcurrentCounting(t *testing.T) {
	l, _ := newTestLimiter(100, time.Minute)

	var wg sync.WaitGroup
	allowed := make(chan bool, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Allow("shared")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	if count != 100 {
		t.Fatalf("expected exactly 100 allowed under concurrency, got %d", count)
	}
}
