// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client connected to the test Valkey.
// Skips the test if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test keys.
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestKey(t *testing.T) {
	if got := Key("en", "about-us"); got != "en:about-us" {
		t.Errorf("Key() = %q", got)
	}
}

func TestPageCacheGetSet(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := pc.Get(ctx, Key("en", "home")); ok {
		t.Fatal("fresh cache should miss")
	}

	html := []byte("<html>home</html>")
	pc.Set(ctx, Key("en", "home"), html)

	got, ok := pc.Get(ctx, Key("en", "home"))
	if !ok {
		t.Fatal("cache should hit after Set")
	}
	if !bytes.Equal(got, html) {
		t.Errorf("Get() = %q, want %q", got, html)
	}
}

func TestPageCacheInvalidateSlug(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	pc.Set(ctx, Key("en", "about"), []byte("en about"))
	pc.Set(ctx, Key("sv", "about"), []byte("sv about"))
	pc.Set(ctx, Key("en", "contact"), []byte("en contact"))

	pc.InvalidateSlug(ctx, "about")

	if _, ok := pc.Get(ctx, Key("en", "about")); ok {
		t.Error("en rendering of the slug should be gone")
	}
	if _, ok := pc.Get(ctx, Key("sv", "about")); ok {
		t.Error("every locale's rendering of the slug should be gone")
	}
	if _, ok := pc.Get(ctx, Key("en", "contact")); !ok {
		t.Error("other slugs should survive slug invalidation")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	pc.Set(ctx, Key("en", "one"), []byte("one"))
	pc.Set(ctx, Key("sv", "two"), []byte("two"))

	pc.InvalidateAll(ctx)

	if _, ok := pc.Get(ctx, Key("en", "one")); ok {
		t.Error("InvalidateAll should clear every cached page")
	}
	if _, ok := pc.Get(ctx, Key("sv", "two")); ok {
		t.Error("InvalidateAll should clear every cached page")
	}
}

func TestPageCacheDefaultTTL(t *testing.T) {
	pc := NewPageCache(nil, 0)
	if pc.ttl != DefaultPageTTL {
		t.Errorf("ttl = %v, want DefaultPageTTL", pc.ttl)
	}
}
