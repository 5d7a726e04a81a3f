package elevator

import (
	"sync"

	"github.com/infinivision/sstf/errmsg"
)

var (
	mu    sync.RWMutex
	table = make(map[string]Constructor)
)

// Register makes a scheduler constructor available by name. It panics on
// a nil constructor or a duplicate name, like any driver registry.
func Register(name string, fn Constructor) {
	mu.Lock()
	defer mu.Unlock()
	if fn == nil {
		panic("elevator: Register with nil constructor")
	}
	if _, ok := table[name]; ok {
		panic("elevator: Register called twice for " + name)
	}
	table[name] = fn
}

func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(table, name)
}

func lookup(name string) (Constructor, error) {
	mu.RLock()
	defer mu.RUnlock()
	if fn, ok := table[name]; ok {
		return fn, nil
	}
	return nil, errmsg.NotRegistered
}
