// SPDX-License-Identifier: EPL-2.0

package impulse

import "errors"

var (
	ErrNoSuchTrack = errors.New("no such track")
)
