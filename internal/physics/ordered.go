package physics

import "iter"

// Named pairs a value with the name it was registered under.
type Named[T any] struct {
	Name  string
	Value T
}

// Ordered is a name-keyed collection that iterates in registration order.
// Setting an existing name replaces the value in place.
type Ordered[T any] struct {
	items []Named[T]
}

func (o *Ordered[T]) index(name string) int {
	for i, it := range o.items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

func (o *Ordered[T]) Set(name string, v T) {
	if i := o.index(name); i >= 0 {
		o.items[i].Value = v
		return
	}
	o.items = append(o.items, Named[T]{Name: name, Value: v})
}

func (o *Ordered[T]) Get(name string) (T, bool) {
	if i := o.index(name); i >= 0 {
		return o.items[i].Value, true
	}
	var zero T
	return zero, false
}

// Remove deletes name and reports whether it was present.
func (o *Ordered[T]) Remove(name string) bool {
	i := o.index(name)
	if i < 0 {
		return false
	}
	o.items = append(o.items[:i], o.items[i+1:]...)
	return true
}

func (o *Ordered[T]) Len() int { return len(o.items) }

func (o *Ordered[T]) Names() []string {
	names := make([]string, len(o.items))
	for i, it := range o.items {
		names[i] = it.Name
	}
	return names
}

// All yields every entry in registration order.
func (o *Ordered[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, it := range o.items {
			if !yield(it.Name, it.Value) {
				return
			}
		}
	}
}
