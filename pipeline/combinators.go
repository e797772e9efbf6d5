package pipeline

import "context"

// All combines filters into one that keeps an item only if every
// inner filter keeps it. Evaluation short-circuits on the first drop.
func All[T any](filters ...Filter[T]) Filter[T] {
	return FilterFunc[T](func(ctx context.Context, item T) bool {
		for _, f := range filters {
			if !f.Keep(ctx, item) {
				return false
			}
		}
		return true
	})
}

// Any combines filters into one that keeps an item if at least one
// inner filter keeps it. An empty set keeps nothing.
func Any[T any](filters ...Filter[T]) Filter[T] {
	return FilterFunc[T](func(ctx context.Context, item T) bool {
		for _, f := range filters {
			if f.Keep(ctx, item) {
				return true
			}
		}
		return false
	})
}

// Not inverts a filter's decision.
func Not[T any](f Filter[T]) Filter[T] {
	return FilterFunc[T](func(ctx context.Context, item T) bool {
		return !f.Keep(ctx, item)
	})
}

// KeepAll keeps every item. A pipeline with no filters behaves
// identically to one with this single filter.
func KeepAll[T any]() Filter[T] {
	return FilterFunc[T](func(context.Context, T) bool { return true })
}

// DropAll drops every item.
func DropAll[T any]() Filter[T] {
	return FilterFunc[T](func(context.Context, T) bool { return false })
}
