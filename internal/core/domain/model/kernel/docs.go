// Package kernel provides the shared value objects of the marketplace domain.
//
// The package includes:
//   - ID: a positive numeric identifier assigned by the store
//   - Page: a clamped take/skip window for listings
//
// Values are immutable and safe for concurrent use.
package kernel
