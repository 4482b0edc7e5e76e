package model

// Collection is an insertion-ordered key/value mapping. When a marker resolves
// to a Collection its values are rendered in the order they were first set;
// dotted keys can also address its entries by name.
type Collection struct {
	keys   []string
	values map[string]any
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{values: make(map[string]any)}
}

// Set stores value under key. Re-setting an existing key keeps its original
// position.
func (c *Collection) Set(key string, value any) *Collection {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
	return c
}

// Clone returns a copy with the same order. Values are shared, not copied.
func (c *Collection) Clone() *Collection {
	out := NewCollection()
	if c == nil {
		return out
	}
	out.keys = append(out.keys, c.keys...)
	for key, value := range c.values {
		out.values[key] = value
	}
	return out
}

// Get returns the value stored under key.
func (c *Collection) Get(key string) (any, bool) {
	if c == nil || c.values == nil {
		return nil, false
	}
	value, ok := c.values[key]
	return value, ok
}

// Delete removes key, preserving the order of the remaining entries.
func (c *Collection) Delete(key string) {
	if c == nil {
		return
	}
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	for i, existing := range c.keys {
		if existing == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (c *Collection) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values returns the values in insertion order.
func (c *Collection) Values() []any {
	if c == nil {
		return nil
	}
	out := make([]any, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.values[key])
	}
	return out
}

// Len reports the number of entries.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}
