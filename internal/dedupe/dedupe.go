// Package dedupe provides shared singleflight groups used to collapse
// concurrent requests for the same work. The contest scanner and the HTTP
// resolve endpoint may both try to resolve a pending contest; only one
// resolution runs and the other caller receives its result.
package dedupe

import "golang.org/x/sync/singleflight"

// ContestGroup deduplicates contest resolutions keyed by keys.ContestKey.
var ContestGroup singleflight.Group
