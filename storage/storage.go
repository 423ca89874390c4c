// Package storage provides the string-keyed blob store the scheduling core
// persists through. Every value is a whole JSON document read and rewritten
// in full on each mutation.
package storage

// Store is a whole-value key-value store. Get reports absence through its
// second return; Set overwrites unconditionally.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string) error
	Clear() error
}

// Prefixed returns a view of s that namespaces every key with prefix + ":".
// Clear only removes keys under the prefix.
func Prefixed(s Store, prefix string) Store {
	return &prefixed{inner: s, prefix: prefix + ":"}
}

type prefixed struct {
	inner  Store
	prefix string
}

func (p *prefixed) Get(key string) ([]byte, bool) {
	return p.inner.Get(p.prefix + key)
}

func (p *prefixed) Set(key string, value []byte) error {
	return p.inner.Set(p.prefix+key, value)
}

func (p *prefixed) Remove(key string) error {
	return p.inner.Remove(p.prefix + key)
}

func (p *prefixed) Clear() error {
	type keyLister interface {
		Keys(prefix string) []string
	}
	if l, ok := p.inner.(keyLister); ok {
		for _, k := range l.Keys(p.prefix) {
			if err := p.inner.Remove(k); err != nil {
				return err
			}
		}
		return nil
	}
	return p.inner.Clear()
}
