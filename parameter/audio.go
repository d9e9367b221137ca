package parameter

import "time"

// Sample pipeline
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferLength sizes the speaker buffer; larger is safer
	// against underruns, smaller keeps effect latency low
	AudioBufferLength = 100 * time.Millisecond

	// DefaultMasterVolume scales every effect before mixing
	DefaultMasterVolume = 0.5
)

// Impact click
const (
	ImpactSoundFreq     = 520.0
	ImpactSoundDuration = 40 * time.Millisecond
	ImpactSoundAttack   = 2 * time.Millisecond
	ImpactSoundRelease  = 30 * time.Millisecond
	ImpactSoundVolume   = 0.4
)

// Zone bounce thud
const (
	BounceSoundFreq     = 160.0
	BounceSoundDuration = 80 * time.Millisecond
	BounceSoundAttack   = 3 * time.Millisecond
	BounceSoundRelease  = 60 * time.Millisecond
	BounceSoundVolume   = 0.5
)

// Zone admission chime (two rising notes)
const (
	AdmitSoundNote1Freq     = 660.0
	AdmitSoundNote2Freq     = 990.0
	AdmitSoundNoteDuration  = 70 * time.Millisecond
	AdmitSoundAttack        = 4 * time.Millisecond
	AdmitSoundRelease       = 50 * time.Millisecond
	AdmitSoundVolume        = 0.45
)

// Removal crackle
const (
	RemovalSoundDuration = 200 * time.Millisecond
	RemovalSoundAttack   = 2 * time.Millisecond
	RemovalSoundRelease  = 170 * time.Millisecond
	RemovalSoundVolume   = 0.5
)

// Pause toggle blip
const (
	PauseSoundLowFreq   = 330.0
	PauseSoundHighFreq  = 494.0
	PauseSoundDuration  = 50 * time.Millisecond
	PauseSoundAttack    = 2 * time.Millisecond
	PauseSoundRelease   = 35 * time.Millisecond
	PauseSoundVolume    = 0.35
)
