package service

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

func uniqueStrings(input []string) []string {
	set := mapset.NewSet[string]()
	for _, s := range input {
		set.Add(s)
	}
	return set.ToSlice()
}

// findByName returns the first item whose name matches, warning when the
// lookup convention is violated by more than one remote match.
func findByName[T any](ctx context.Context, items []T, nameOf func(T) string, match func(string) bool) (T, bool) {
	var (
		found   T
		ok      bool
		matched []string
	)
	for _, item := range items {
		if match(nameOf(item)) {
			if !ok {
				found = item
				ok = true
			}
			matched = append(matched, nameOf(item))
		}
	}
	if len(matched) > 1 {
		ctxzap.Extract(ctx).Warn(
			"multiple remote resources match name lookup, using first",
			zap.Strings("names", uniqueStrings(matched)),
		)
	}
	return found, ok
}

func exactName(name string) func(string) bool {
	return func(candidate string) bool { return candidate == name }
}
