package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies playback is safe
// without initialization
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayImpact()
	sm.PlayZoneBounce()
	sm.PlayZoneAdmit()
	sm.PlayRemoval()
	sm.PlayPauseToggle(true)
	sm.PlayPauseToggle(false)
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerMuteSwitch verifies the mute toggle
func TestSoundManagerMuteSwitch(t *testing.T) {
	sm := NewSoundManager(0.5)

	if sm.Muted() {
		t.Fatal("Expected unmuted by default")
	}
	if !sm.ToggleMuted() {
		t.Fatal("Expected toggle to mute")
	}
	if !sm.Muted() {
		t.Fatal("Expected muted state")
	}
	if sm.ToggleMuted() {
		t.Fatal("Expected second toggle to unmute")
	}

	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("Expected muted after SetMuted")
	}

	// Muted playback must not panic even when uninitialized.
	sm.PlayImpact()
}

// TestSoundManagerVolumeClamped verifies master volume bounds
func TestSoundManagerVolumeClamped(t *testing.T) {
	sm := NewSoundManager(-0.5)
	if sm.master != 0 {
		t.Errorf("Expected negative volume clamped to 0, got %g", sm.master)
	}

	sm = NewSoundManager(2.0)
	if sm.master != 1 {
		t.Errorf("Expected oversized volume clamped to 1, got %g", sm.master)
	}

	sm.SetMasterVolume(0.25)
	if sm.master != 0.25 {
		t.Errorf("Expected volume 0.25, got %g", sm.master)
	}
	sm.SetMasterVolume(9)
	if sm.master != 1 {
		t.Errorf("Expected update clamped to 1, got %g", sm.master)
	}
}

// TestSoundManagerInitialization verifies init and cleanup
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5)

	// Speaker initialization fails on machines without audio devices;
	// the simulation runs silent in that case.
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if !sm.Initialized() {
		t.Error("Expected initialized state")
	}

	// Second initialization is a no-op.
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayImpact()
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected uninitialized after cleanup")
	}
}
