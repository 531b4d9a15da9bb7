package sysinfo

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/cache"
)

func newCache(t *testing.T) *cache.Store {
	t.Helper()
	c, err := cache.NewStore(cache.StoreConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return c
}

func TestRememberingStoresFacts(t *testing.T) {
	c := newCache(t)
	if _, ok := Last(c); ok {
		t.Fatal("empty cache reported facts")
	}

	collect := Remembering(c, func(context.Context) (*Facts, error) {
		return &Facts{User: "ada", Hostname: "engine", Uptime: 3 * time.Hour}, nil
	})
	if _, err := collect(context.Background()); err != nil {
		t.Fatalf("collect: %v", err)
	}

	f, ok := Last(c)
	if !ok {
		t.Fatal("facts not remembered")
	}
	if f.User != "ada" || f.Hostname != "engine" || f.Uptime != 3*time.Hour {
		t.Errorf("Last = %+v", f)
	}
}

func TestRememberingSkipsFailures(t *testing.T) {
	c := newCache(t)
	collect := Remembering(c, func(context.Context) (*Facts, error) {
		return &Facts{User: "partial"}, errors.New("probe failed")
	})
	if _, err := collect(context.Background()); err == nil {
		t.Fatal("error was swallowed")
	}
	if _, ok := Last(c); ok {
		t.Error("failed collection was cached")
	}
}

func TestNilCache(t *testing.T) {
	if _, ok := Last(nil); ok {
		t.Error("nil cache reported facts")
	}
	called := false
	collect := Remembering(nil, func(context.Context) (*Facts, error) {
		called = true
		return &Facts{}, nil
	})
	collect(context.Background())
	if !called {
		t.Error("collector not called")
	}
}
