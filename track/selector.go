// SPDX-License-Identifier: EPL-2.0

package track

import "github.com/ik5/impulse/sample"

// Policy decides which part of the accumulated buffer a refresh hands to
// the spectrogram.
type Policy uint8

const (
	// All selects the entire accumulated buffer. Selecting twice over the
	// same buffer yields the same slice.
	All Policy = iota

	// NewOnly selects only samples accumulated since the previous selection.
	// Repeated selections partition the buffer's growth.
	NewOnly
)

func (p Policy) String() string {
	switch p {
	case All:
		return "all"
	case NewOnly:
		return "new-only"
	}
	return "unknown"
}

// Select applies policy to the accumulated buffer. cursor marks how far the
// previous selection reached; the updated cursor is returned with the
// selected slice. All ignores the incoming cursor and always covers the
// whole buffer, but still advances the cursor to the end so a later switch
// to NewOnly does not replay samples the engine has already seen. The
// returned slice is borrowed from buf and stays contiguous and in order.
func Select[T sample.Sample](buf []T, policy Policy, cursor int) ([]T, int) {
	if policy == All {
		return buf, len(buf)
	}

	if cursor < 0 {
		cursor = 0
	} else if cursor > len(buf) {
		cursor = len(buf)
	}
	return buf[cursor:], len(buf)
}
