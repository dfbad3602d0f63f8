// Package runner defines the narrow interface between configuration
// resolution and test execution. The CLI resolves flags and file defaults
// into an Options value and hands it to a Runner; what "running tests"
// means is entirely the runner's business.
package runner
