// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateMeter(t *testing.T) {
	var rm rateMeter
	now := time.Unix(0, 0)
	rm.tick(now)
	assert.Zero(t, rm.rate())

	for range rateFrames {
		now = now.Add(20 * time.Millisecond)
		rm.tick(now)
	}
	assert.InDelta(t, 50, rm.rate(), 0.01)

	// old intervals fall out of the window
	for range rateFrames {
		now = now.Add(10 * time.Millisecond)
		rm.tick(now)
	}
	assert.InDelta(t, 100, rm.rate(), 0.01)
	assert.Equal(t, rateFrames, rm.n)
}
