// Package backfill looks up airports that routes reference but the registry
// lacks, one request at a time, and caches every raw response.
//
// # Resume
//
// A code with a cache entry is never looked up again. A failed lookup leaves no
// entry, so the next run retries it; a run never retries on its own.
//
// # Throttle
//
// Requests are strictly sequential and spaced by a rate limiter with a burst of
// one. The cache write of a response completes before the next request starts.
//
// # Stores
//
// FileStore keeps one <CODE>.json per code in the feed data directory.
// BucketStore keeps the same objects under a prefix of an S3 compatible bucket.
package backfill
