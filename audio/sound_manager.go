package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/orb-arena/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and the effect mixer. Playback is
// fire-and-forget: each effect is a finite streamer added to the
// mixer, which drops it when drained. All methods are no-ops until
// Initialize succeeds, so a machine without audio degrades to silence
// instead of failing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a manager with the given master volume,
// clamped to [0, 1]. The speaker stays untouched until Initialize.
func NewSoundManager(master float64) *SoundManager {
	if master < 0 {
		master = 0
	}
	if master > 1 {
		master = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		master: master,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call
// more than once; an error leaves the manager silent but usable.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferLength))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is live.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup drops all queued effects and silences the manager.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted switches effect playback off or on without touching the
// speaker.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMuted flips the mute switch and returns the new state.
func (sm *SoundManager) ToggleMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute switch.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetMasterVolume rescales future effects, clamped to [0, 1]. Effects
// already mixing keep their volume.
func (sm *SoundManager) SetMasterVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.master = v
}

// play adds a finite effect to the mixer unless silent.
func (sm *SoundManager) play(build func(master float64, rate beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := build(sm.master, sampleRate)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayImpact plays the body collision click.
func (sm *SoundManager) PlayImpact() {
	sm.play(CreateImpactSound)
}

// PlayZoneBounce plays the full-zone rejection thud.
func (sm *SoundManager) PlayZoneBounce() {
	sm.play(CreateBounceSound)
}

// PlayZoneAdmit plays the admission chime.
func (sm *SoundManager) PlayZoneAdmit() {
	sm.play(CreateAdmitSound)
}

// PlayRemoval plays the crackle for culled bodies.
func (sm *SoundManager) PlayRemoval() {
	sm.play(CreateRemovalSound)
}

// PlayPauseToggle plays the pause blip, falling or rising with the
// new state.
func (sm *SoundManager) PlayPauseToggle(paused bool) {
	sm.play(func(master float64, rate beep.SampleRate) beep.Streamer {
		return CreatePauseSound(paused, master, rate)
	})
}
