package mock

import (
	"fmt"
	"sync/atomic"

	"github.com/centraunit/dibox"
)

// Core interfaces
type Database interface {
	Connect() error
	DSN() string
}

type Cache interface {
	Get(key string) any
	Put(key string, val any)
}

// Config is a fixed-value configuration root, typically bound as a
// singleton.
type Config struct {
	DSN      string
	CacheTTL int
}

// Mock implementations
type MemoryDB struct {
	Conf      dibox.Shared[*Config]
	connected bool
}

func (m *MemoryDB) Connect() error {
	m.connected = true
	return nil
}

func (m *MemoryDB) IsConnected() bool {
	return m.connected
}

func (m *MemoryDB) DSN() string {
	if m.Conf.IsZero() {
		return ""
	}
	return m.Conf.Value().DSN
}

type MemoryCache struct {
	items map[string]any
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]any)}
}

func (m *MemoryCache) Get(key string) any {
	return m.items[key]
}

func (m *MemoryCache) Put(key string, val any) {
	m.items[key] = val
}

// Service depends on Config, Database and Cache; used to exercise
// nested resolution.
type Service struct {
	Conf  dibox.Shared[*Config]
	DB    dibox.Shared[Database]
	Store dibox.Shared[Cache]
}

// Deep dependency chain
type DeepService3 struct {
	Value string
}

type DeepService2 struct {
	Next dibox.Shared[*DeepService3]
}

type DeepService1 struct {
	Next dibox.Shared[*DeepService2]
}

// Cycle fixtures: SelfLoop resolves itself, CycleA and CycleB resolve
// each other, CycleC closes a three-node loop back to CycleA.
type SelfLoop struct{}

type CycleA struct{}

type CycleB struct{}

type CycleC struct{}

// Counter tracks builder invocations across resolutions.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) Inc() int64 {
	return c.n.Add(1)
}

func (c *Counter) Count() int64 {
	return c.n.Load()
}

// FailingDep always fails to build; used to verify propagation of
// nested failures.
type FailingDep struct{}

var ErrBoom = fmt.Errorf("boom")
