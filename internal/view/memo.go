package view

import "sync"

type memoKey struct {
	version uint64
	query   string
	cfg     FilterConfig
}

// Memo caches the last derivation of one source collection. A result is
// reused only when the source version, the query and the config are all
// unchanged; any other call recomputes and replaces it.
//
// Results are shared between callers and must be treated as read-only.
type Memo[R any] struct {
	mu     sync.Mutex
	valid  bool
	key    memoKey
	result R
}

func (m *Memo[R]) Get(version uint64, query string, cfg FilterConfig, compute func() R) R {
	key := memoKey{version: version, query: query, cfg: cfg}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.key == key {
		return m.result
	}
	m.result = compute()
	m.key = key
	m.valid = true
	return m.result
}

// Reset drops the cached result.
func (m *Memo[R]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero R
	m.result = zero
	m.valid = false
}

// Memos keeps one Memo per scope, e.g. per merchant.
type Memos[R any] struct {
	mu    sync.Mutex
	items map[string]*Memo[R]
}

func (m *Memos[R]) For(scope string) *Memo[R] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.items == nil {
		m.items = map[string]*Memo[R]{}
	}
	memo, ok := m.items[scope]
	if !ok {
		memo = &Memo[R]{}
		m.items[scope] = memo
	}
	return memo
}

// Drop forgets the memo of scope.
func (m *Memos[R]) Drop(scope string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, scope)
}
