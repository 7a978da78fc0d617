// Package scorecache serves score lookups from an in-memory snapshot of the
// score store, refreshed on a TTL. The scoring pipeline forces a refresh
// after every write so that dependent reads in the same run observe the
// just-written value.
package scorecache
