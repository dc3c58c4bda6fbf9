package testsupport

import (
	"bytes"
	"fmt"
	"testing"
)

// TestingLog buffers everything logged through the testing.TB interface, so
// tests can assert on output written via zerolog.TestWriter.
type TestingLog struct {
	testing.TB
	buf bytes.Buffer
}

func (t *TestingLog) Log(args ...any) {
	if _, err := fmt.Fprint(&t.buf, args...); err != nil {
		t.Error(err)
	}
}

func (t *TestingLog) Logf(format string, args ...any) {
	if _, err := fmt.Fprintf(&t.buf, format, args...); err != nil {
		t.Error(err)
	}
}

func (t *TestingLog) CollectedLog() string { return t.buf.String() }
