// SPDX-License-Identifier: EPL-2.0

package track

import (
	"errors"
	"testing"
)

func TestErrChannelClosed(t *testing.T) {
	t.Parallel()

	if ErrChannelClosed == nil {
		t.Fatal("ErrChannelClosed is nil")
	}

	expectedMsg := "track channel closed"
	if ErrChannelClosed.Error() != expectedMsg {
		t.Errorf("ErrChannelClosed.Error() = %q, want %q", ErrChannelClosed.Error(), expectedMsg)
	}
}

func TestErrChannelClosed_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(ErrChannelClosed, errors.New("producer context"))
	if !errors.Is(wrapped, ErrChannelClosed) {
		t.Error("errors.Is() failed for wrapped ErrChannelClosed")
	}

	other := errors.New("some other error")
	if errors.Is(other, ErrChannelClosed) {
		t.Error("errors.Is() should return false for a different error")
	}
}
