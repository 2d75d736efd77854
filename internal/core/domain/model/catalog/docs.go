// Package catalog holds the services clients can order and the vendors that
// fulfil them. Both are managed by the administrator; only active entries
// may be referenced by new orders or assignments.
package catalog
