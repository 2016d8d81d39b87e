// Package app defines the runtime contract shared by the cmd entrypoints
// (the long-running serve mode today).
//
// It lets cmd/* binaries start application components without depending on
// their concrete implementations.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
