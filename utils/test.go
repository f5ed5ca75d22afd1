package utils

import (
	"os"
	"testing"
)

// WithCleanDirs removes all specified directories before and after running tests.
// Returns the exit code instead of calling os.Exit() for safer test execution.
func WithCleanDirs(m *testing.M, dirs ...string) int {
	for _, dir := range dirs {
		os.RemoveAll(dir)
	}
	code := m.Run()
	for _, dir := range dirs {
		os.RemoveAll(dir)
	}
	return code
}
