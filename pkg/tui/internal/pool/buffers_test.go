// ABOUTME: Tests for the render buffer pool
// ABOUTME: Verifies buffers come back empty and oversized buffers are not retained

package pool

import (
	"bytes"
	"testing"
)

func TestGetBytesBuffer_Empty(t *testing.T) {
	t.Parallel()

	buf := GetBytesBuffer()
	buf.WriteString("frame")
	PutBytesBuffer(buf)

	again := GetBytesBuffer()
	defer PutBytesBuffer(again)
	if again.Len() != 0 {
		t.Errorf("Len() = %d, want 0", again.Len())
	}
}

func TestPutBytesBuffer_NilAndOversized(t *testing.T) {
	t.Parallel()

	PutBytesBuffer(nil)

	big := bytes.NewBuffer(make([]byte, 0, maxPooledCap+1))
	big.WriteString("x")
	PutBytesBuffer(big)
	if big.Len() != 1 {
		t.Error("oversized buffer should be left untouched")
	}
}
