// Package testing provides helpers for testing code that uses the mplc library.
//
// It includes a test logger that routes log output through testing.T and
// deterministic dataset fixtures used across package tests.
package testing
