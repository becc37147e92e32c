package scratch

// fadeEpsilon absorbs float drift so that 1/step ticks land on exactly zero.
const fadeEpsilon = 1e-9

func (s *Surface) startFade() {
	if s.fading {
		return
	}
	s.fading = true
	s.fade = 1.0
	s.fadeTicks = 0
}

// TickFade advances the fade-out by one frame. It lowers the overlay opacity by the fade
// step and, once the opacity reaches zero, clamps it, hides the overlay and fires the
// reveal notifier. It returns true while the fade is still running.
//
// Before the reveal and after the fade completes it does nothing.
func (s *Surface) TickFade() bool {
	if !s.fading {
		return false
	}

	s.fadeTicks++
	// Derived from the tick count rather than repeated subtraction so the sequence is
	// exactly 1 - n*step.
	s.fade = 1.0 - float64(s.fadeTicks)*s.opts.FadeStep
	if s.fade > fadeEpsilon {
		return true
	}

	s.fade = 0
	s.fading = false
	s.overlayVisible = false
	if s.notify != nil {
		s.notify()
	}
	return false
}

// FadeProgress returns the overlay opacity in [0, 1].
func (s *Surface) FadeProgress() float64 { return s.fade }

// Fading reports whether the fade-out is running.
func (s *Surface) Fading() bool { return s.fading }

// OverlayVisible reports whether the overlay should be drawn at all.
func (s *Surface) OverlayVisible() bool { return s.overlayVisible }

// FadeTicks returns the number of fade steps needed to go from opaque to hidden.
func (s *Surface) FadeTicks() int {
	n := 0
	for v := 1.0; v > fadeEpsilon; n++ {
		v = 1.0 - float64(n+1)*s.opts.FadeStep
	}
	return n
}
