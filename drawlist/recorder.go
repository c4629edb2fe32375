// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawlist

// Recorder is a Sink that keeps every primitive it receives, in order.
// It can replay the captured frame onto another sink.
type Recorder struct {
	Width, Height int
	Frames        int
	Prims         []Primitive
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Begin implements Sink. It discards the previous frame.
func (r *Recorder) Begin(width, height int) error {
	r.Width, r.Height = width, height
	r.Prims = r.Prims[:0]
	return nil
}

// DrawSprite implements Sink.
func (r *Recorder) DrawSprite(s Sprite) {
	r.Prims = append(r.Prims, s)
}

// DrawText implements Sink.
func (r *Recorder) DrawText(t Text) {
	r.Prims = append(r.Prims, t)
}

// End implements Sink.
func (r *Recorder) End() error {
	r.Frames++
	return nil
}

// Playback draws the last recorded frame onto sink unchanged.
func (r *Recorder) Playback(sink Sink) error {
	if err := sink.Begin(r.Width, r.Height); err != nil {
		return err
	}
	for _, p := range r.Prims {
		draw(sink, p, 0)
	}
	return sink.End()
}

func init() {
	Register("recorder", func() Sink {
		return NewRecorder()
	})
}
