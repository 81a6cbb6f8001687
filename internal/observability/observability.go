// Package observability provides the OpenTelemetry instrumentation used by
// the filterexpr package. All instruments resolve against the global
// providers, so everything here is a no-op until the host application
// installs real ones.
package observability

// ScopeName identifies this instrumentation scope.
const ScopeName = "github.com/querykit/go-filterexpr"
