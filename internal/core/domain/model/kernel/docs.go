// Package kernel provides the value objects shared by every aggregate of the
// sepulka domain.
//
// The package includes:
//   - UUID: identifier of users and sepulka orders
//   - Page: a validated page number and page size used by list queries
//
// Both are immutable and safe for concurrent use.
package kernel
