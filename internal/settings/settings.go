// Package settings provides namespaced key/value plugin settings.
package settings

import "context"

// Getter looks up a single setting. A missing setting is reported as
// ok == false with a nil error.
type Getter interface {
	Get(ctx context.Context, namespace, key string) (value string, ok bool, err error)
}

// Setting is one stored key/value pair.
type Setting struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// MapStore is a static, read-only settings source keyed by namespace then key.
type MapStore map[string]map[string]string

// Get implements Getter.
func (m MapStore) Get(_ context.Context, namespace, key string) (string, bool, error) {
	ns, ok := m[namespace]
	if !ok {
		return "", false, nil
	}
	v, ok := ns[key]
	return v, ok, nil
}

// Chain consults each Getter in order and returns the first value found.
type Chain []Getter

// Get implements Getter. An error from any source aborts the lookup.
func (c Chain) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	for _, g := range c {
		if g == nil {
			continue
		}
		v, ok, err := g.Get(ctx, namespace, key)
		if err != nil {
			return "", false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return "", false, nil
}
