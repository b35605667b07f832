// SPDX-License-Identifier: EPL-2.0

// Package track carries samples from a producer to the display side of one
// audio track.
//
// Each track owns a Channel: an unbounded transport queue written by one
// producer (a file decoder, a live input) plus an append-only accumulated
// buffer owned by the consumer side. The transport queue is the only state
// shared between goroutines; everything else in the package is single-owner.
//
// # Producer Side
//
// A producer obtains a Sender from the channel. Senders are small value
// handles over shared state, so they can be copied freely or requested again
// to hand off to a decode goroutine:
//
//	ch := track.New[int16]()
//	snd := ch.Sender()
//	go decode(file, snd)
//
// Send never blocks. After the consumer side closes the channel, Send
// returns ErrChannelClosed and the producer is expected to stop producing.
//
// # Consumer Side
//
// The channel owner drains the transport queue into the accumulated buffer
// once per refresh cycle:
//
//	n := ch.Drain()          // move pending samples, arrival order kept
//	all := ch.Samples()      // borrowed view of everything drained so far
//
// The accumulated buffer is strictly append-only: samples are never
// reordered, mutated, lost or duplicated. A closed channel that has nothing
// pending drains zero samples; that is a terminal state, not an error.
//
// # Selection Policies
//
// Select applies a Policy to the accumulated buffer and decides which part
// of it the spectrogram recomputes from on a refresh. All hands over the
// whole history every time; NewOnly hands over only samples accumulated
// since the previous selection, tracked through a cursor the caller keeps:
//
//	view, cursor = track.Select(ch.Samples(), track.NewOnly, cursor)
//
// Consecutive NewOnly selections partition the buffer's growth with no
// overlap and no gaps.
package track
