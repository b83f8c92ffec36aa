// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "time"

// rateFrames is the number of frame intervals averaged by a rateMeter.
const rateFrames = 120

// rateMeter averages the frame rate over the most recent frames.
type rateMeter struct {
	intervals [rateFrames]time.Duration
	n, next   int
	sum       time.Duration
	last      time.Time
}

// tick records the start of a frame.
func (rm *rateMeter) tick(t time.Time) {
	if !rm.last.IsZero() {
		d := t.Sub(rm.last)
		if rm.n == rateFrames {
			rm.sum -= rm.intervals[rm.next]
		} else {
			rm.n++
		}
		rm.intervals[rm.next] = d
		rm.sum += d
		rm.next = (rm.next + 1) % rateFrames
	}
	rm.last = t
}

// rate returns frames per second, or 0 before two frames.
func (rm *rateMeter) rate() float32 {
	if rm.n == 0 || rm.sum <= 0 {
		return 0
	}
	return float32(float64(rm.n) / rm.sum.Seconds())
}
