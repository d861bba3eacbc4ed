package player

import (
	"image"
	"time"

	"github.com/v0xg/k90macro/internal/gifgen"
	"github.com/v0xg/k90macro/internal/macro"
)

// DefaultHold is how long the final frame of a recording stays on screen.
const DefaultHold = time.Second

// Recorder captures a frame after every key event of a playback. Use its
// Step method as Options.AfterStep.
type Recorder struct {
	Capture func() (image.Image, error)
	Hold    time.Duration

	images []image.Image
	times  []time.Duration
}

// Start captures the frame shown before the first event.
func (r *Recorder) Start() error {
	return r.capture(0)
}

// Step captures the page after a key event. Delays only advance time.
func (r *Recorder) Step(s Step) error {
	if s.Skipped {
		return nil
	}
	if _, ok := s.Event.(macro.Delay); ok {
		return nil
	}
	return r.capture(s.Elapsed)
}

func (r *Recorder) capture(at time.Duration) error {
	img, err := r.Capture()
	if err != nil {
		return err
	}
	r.images = append(r.images, img)
	r.times = append(r.times, at)
	return nil
}

// Frames returns the captured images, each shown until the next one was
// taken in macro time.
func (r *Recorder) Frames() []gifgen.Frame {
	hold := r.Hold
	if hold <= 0 {
		hold = DefaultHold
	}

	frames := make([]gifgen.Frame, len(r.images))
	for i, img := range r.images {
		d := hold
		if i+1 < len(r.times) {
			d = r.times[i+1] - r.times[i]
		}
		frames[i] = gifgen.Frame{Image: img, Delay: d}
	}
	return frames
}
