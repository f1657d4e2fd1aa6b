package dedupe

// Package dedupe provides a shared singleflight group used to deduplicate
// concurrent read requests. Using a centralized singleflight.Group ensures
// that only one query runs for a given key while other callers wait for the
// result.

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates leaderboard queries keyed by sort order and
// limit (e.g. "wins:10").
var LeaderboardGroup singleflight.Group
