// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package alarm runs closures at deadlines.
//
// [Set] keeps closures ordered by deadline; the owning loop calls
// [Set.RunDue] with the current time. [Alarm] builds a restartable,
// optionally repeating timer on top of a Set for one permanent closure.
//
// Time is whatever the caller says it is: nothing here reads a clock
// except through the clock function given to [New].
package alarm
