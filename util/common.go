package util

import (
	"github.com/dnsvet/dnsvet/log"
)

// FatalOnError logs a fatal message and terminates the process if the error is not nil
func FatalOnError(message string, err error) {
	if err != nil {
		log.Log().Fatal(message, err)
	}
}

// Deduplicate returns the slice without repeated elements, first occurrence
// order is preserved
func Deduplicate[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	result := make([]T, 0, len(in))

	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}

		result = append(result, v)
	}

	return result
}
