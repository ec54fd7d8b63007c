package keys

import (
	"sort"
	"strconv"
	"strings"
)

// MatchupKey produces a canonical key for a pair of robot IDs, independent
// of who challenges whom (e.g. "3_7").
func MatchupKey(a, b uint) string {
	ids := []uint{a, b}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return strconv.FormatUint(uint64(ids[0]), 10) + "_" + strconv.FormatUint(uint64(ids[1]), 10)
}

// NameKey normalizes a robot or weapon name for case-insensitive lookups:
// trimmed, lower-cased, inner spaces replaced with underscores.
func NameKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// ContestKey is the singleflight key used when resolving a contest.
func ContestKey(id uint) string {
	return "contest:" + strconv.FormatUint(uint64(id), 10)
}
