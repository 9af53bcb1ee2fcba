// Package ports defines the interfaces for external dependencies of the weather view.
// These interfaces are implemented by adapters and mocked for testing.
package ports
