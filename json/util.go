package json

import (
	"sort"
	"strconv"
)

func sortedKeys[T any](m map[string]T) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func itoa(n int) string { return strconv.Itoa(n) }

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
