// SPDX-License-Identifier: EPL-2.0

// Package impulse ingests streams of audio samples per track and renders
// them into spectrograms.
//
// The package ties together the building blocks of the pipeline: producers
// push samples through a track channel, accumulated samples are selected by
// a refresh policy, and each track's spectrogram engine recomputes its
// time-frequency matrix from the selection. The hosting application (the
// widget tree, buttons, file dialogs) stays outside; it only drives the
// Registry and reads the results.
//
// # Quick Start
//
//	reg := impulse.NewRegistry[float32](track.All)
//	idx, snd := reg.AddTrack()
//
//	// A producer, e.g. a decode goroutine, feeds the track:
//	go func() {
//	    for _, v := range samples {
//	        if err := snd.Send(v); err != nil {
//	            return // track was removed
//	        }
//	    }
//	}()
//
//	// Once per display refresh:
//	reg.RefreshAll()
//	matrix, _ := reg.Representation(idx)
//	// draw matrix
//
// # Refresh Policies
//
// The selection policy is registry configuration. track.All recomputes every
// spectrogram from the full history on each refresh and is the safe default;
// track.NewOnly feeds each engine only the newly arrived samples, keeping
// refresh cost proportional to new data.
//
// # Importing Audio
//
// The import flow turns an audio file into a producer for a track:
//
//	formats := impulse.NewFormatRegistry()
//	idx, snd := reg.AddTrack()
//	go func() {
//	    err := impulse.ImportFile(ctx, formats, "song.ogg", snd, 44100)
//	    // err reports decode failures or track removal
//	}()
//
// Supported containers are WAV, MP3, Ogg Vorbis and AIFF; multi-channel
// input is mixed to mono and optionally resampled before it reaches the
// track. Decoders live in the formats subpackages and register by file
// extension, so hosts can also bring their own.
//
// # Exporting Audio
//
// ExportWAV writes a track's accumulated samples back out as a mono 16-bit
// PCM WAV file.
//
// # Concurrency
//
// One producer per track runs freely against the refresh cycle; the track
// channel's transport queue is the only synchronization point. RefreshAll
// and everything downstream of it runs on the single display thread.
// Removing a track closes its channel, which producers observe as
// track.ErrChannelClosed on their next send.
package impulse
