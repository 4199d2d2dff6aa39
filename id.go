// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "go.uber.org/atomic"

var idCounter = atomic.NewUint64(0)

// nextID returns a process-unique, increasing closure identifier.
func nextID() uint64 {
	return idCounter.Inc()
}
