package typedlist

// Map returns a new list, pre-sized with the source's capacity, holding
// transform(item) for every item in order. The first error from transform
// stops the traversal and is returned as is, with no partial list.
// A nil transform copies the list.
func (l *List[T]) Map(transform Transform[T]) (*List[T], error) {
	out := NewWithCapacity[T](l.Cap())
	for _, item := range l.items {
		if transform == nil {
			out.Add(item)
			continue
		}
		mapped, err := transform(item)
		if err != nil {
			return nil, err
		}
		out.Add(mapped)
	}
	return out, nil
}

// ForEach calls action once per item in order and stops at the first error.
func (l *List[T]) ForEach(action Action[T]) error {
	if action == nil {
		return nil
	}
	for _, item := range l.items {
		if err := action(item); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns the items equal to match, in order.
// Unlike Map, the result starts at the default capacity.
func (l *List[T]) Filter(match T) *List[T] {
	out := New[T]()
	for _, item := range l.items {
		if item == match {
			out.Add(item)
		}
	}
	return out
}

// FilterOut returns the items not equal to weed, in order.
func (l *List[T]) FilterOut(weed T) *List[T] {
	out := New[T]()
	for _, item := range l.items {
		if item != weed {
			out.Add(item)
		}
	}
	return out
}
