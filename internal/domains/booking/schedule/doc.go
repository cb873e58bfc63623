// Package schedule holds the day scheduling rules for coaching calls:
// the fixed slot grid, weekly recurrence expansion, day view resolution
// and overlap conflict detection. Everything in this package is a pure
// computation over booking records, safe for concurrent use.
package schedule
