// SPDX-License-Identifier: EPL-2.0

package track

import "errors"

var (
	ErrChannelClosed = errors.New("track channel closed")
)
