package store_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Watch owns a goroutine per call; every test must leave none behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
