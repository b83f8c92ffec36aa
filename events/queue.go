// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Queue is a FIFO of events. Platform callbacks Send into it and
// the frame loop takes everything pending once per frame with Drain.
// The zero value is ready to use.
type Queue struct {
	mu     sync.Mutex
	events []Event
	spare  []Event
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain removes and returns all pending events in order.
// The returned slice is only valid until the next call to Drain.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.events
	q.events = q.spare[:0]
	q.spare = evs
	return evs
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
