package service_test

import (
	"testing"

	"github.com/mystore/storefront/internal/service"
)

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	tb := service.NewTokenBucket(1, 3) // rate=1/s, capacity=3
	defer tb.Stop()

	for i := 0; i < 3; i++ {
		if !tb.Allow("203.0.113.9") {
			t.Fatalf("request %d should be allowed (bucket not yet empty)", i+1)
		}
	}

	if tb.Allow("203.0.113.9") {
		t.Fatal("4th request should be denied (bucket empty)")
	}
}

func TestTokenBucket_DifferentKeysAreIndependent(t *testing.T) {
	tb := service.NewTokenBucket(1, 1)
	defer tb.Stop()

	if !tb.Allow("ip-a") {
		t.Fatal("ip-a first request should be allowed")
	}
	if tb.Allow("ip-a") {
		t.Fatal("ip-a second request should be denied")
	}

	if !tb.Allow("ip-b") {
		t.Fatal("ip-b first request should be allowed (independent bucket)")
	}
}

func TestTokenBucket_NewKeyStartsFull(t *testing.T) {
	tb := service.NewTokenBucket(10, 5)
	defer tb.Stop()

	for i := 0; i < 5; i++ {
		if !tb.Allow("fresh-key") {
			t.Fatalf("request %d should be allowed (starts full)", i+1)
		}
	}
	if tb.Allow("fresh-key") {
		t.Fatal("6th request should be denied")
	}
}

func TestTokenBucket_ZeroRateNeverRefills(t *testing.T) {
	tb := service.NewTokenBucket(0, 2)
	defer tb.Stop()

	if !tb.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if !tb.Allow("k") {
		t.Fatal("second request should be allowed")
	}
	if tb.Allow("k") {
		t.Fatal("third request should be denied (no refill)")
	}
}
