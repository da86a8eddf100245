// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-gfx/lumen/key"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Init()

	_, ok := q.NextEvent()
	assert.False(t, ok)

	q.Send(Event{Type: KeyDown, Key: key.CodeA})
	q.Send(Event{Type: KeyUp, Key: key.CodeA})
	q.Send(Event{Type: WindowClose})
	assert.Equal(t, uint64(3), q.Len())

	ev, ok := q.NextEvent()
	assert.True(t, ok)
	assert.Equal(t, KeyDown, ev.Type)
	ev, _ = q.NextEvent()
	assert.Equal(t, KeyUp, ev.Type)
	ev, _ = q.NextEvent()
	assert.Equal(t, WindowClose, ev.Type)

	_, ok = q.NextEvent()
	assert.False(t, ok)
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueConcurrentSend(t *testing.T) {
	var q Queue
	q.Init()

	const senders, per = 8, 100
	var wg sync.WaitGroup
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				q.Send(Event{Type: MouseMove})
			}
		}()
	}
	wg.Wait()

	n := 0
	for {
		if _, ok := q.NextEvent(); !ok {
			break
		}
		n++
	}
	assert.Equal(t, senders*per, n)
}
