package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/orb-arena/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sampleFunc returns the generator for one wave shape. Phase is in
// [0, 1); noise ignores it.
func (w WaveType) sampleFunc() func(phase float64) float64 {
	switch w {
	case WaveSquare:
		return func(phase float64) float64 {
			if phase < 0.5 {
				return 1
			}
			return -1
		}
	case WaveSaw:
		return func(phase float64) float64 { return 2*phase - 1 }
	case WaveNoise:
		return func(float64) float64 { return rand.Float64()*2 - 1 }
	default:
		return func(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }
	}
}

// oscillator generates a fixed-length raw wave
type oscillator struct {
	sample    func(phase float64) float64
	phase     float64
	phaseStep float64
	remaining int
}

// NewOscillator creates a finite oscillator streamer. Frequency is
// ignored for noise.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		sample:    wave.sampleFunc(),
		phaseStep: freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.remaining <= 0 {
			return i, i > 0
		}
		v := o.sample(o.phase)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.phaseStep
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.remaining--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps
type envelope struct {
	streamer     beep.Streamer
	position     int
	attackEnd    int
	releaseStart int
	totalSamples int
}

// NewEnvelope wraps s in an attack/release gain curve over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	relStart := total - rel
	if relStart < att {
		relStart = att
	}

	return &envelope{
		streamer:     s,
		attackEnd:    att,
		releaseStart: relStart,
		totalSamples: total,
	}
}

// gainAt returns the envelope gain for one sample position
func (e *envelope) gainAt(pos int) float64 {
	if pos < e.attackEnd {
		return float64(pos) / float64(e.attackEnd)
	}
	if pos >= e.releaseStart {
		rel := e.totalSamples - e.releaseStart
		if rel <= 0 {
			return 0
		}
		g := float64(e.totalSamples-pos) / float64(rel)
		if g < 0 {
			g = 0
		}
		return g
	}
	return 1.0
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		g := e.gainAt(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream on beep's exponential scale. Zero or
// negative volume flips the silent switch since math.Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if vol <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(vol)
	return v
}

// Sound effect generators. Each takes the master volume already
// resolved by the manager.

// CreateImpactSound generates the short click for body collisions
func CreateImpactSound(master float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.ImpactSoundFreq, parameter.ImpactSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ImpactSoundDuration, parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)
	return newVolume(shaped, parameter.ImpactSoundVolume*master)
}

// CreateBounceSound generates the low thud for zone rejections
func CreateBounceSound(master float64, rate beep.SampleRate) beep.Streamer {
	fund := NewOscillator(parameter.BounceSoundFreq, parameter.BounceSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)

	// An octave down fills the thud out.
	sub := NewOscillator(parameter.BounceSoundFreq/2, parameter.BounceSoundDuration, WaveSine, rate)
	subShaped := NewEnvelope(sub, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(subShaped, 0.3),
	)
	return newVolume(mixed, parameter.BounceSoundVolume*master)
}

// CreateAdmitSound generates the rising two-note chime for zone
// admissions
func CreateAdmitSound(master float64, rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.AdmitSoundNote1Freq, parameter.AdmitSoundNoteDuration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.AdmitSoundNoteDuration, parameter.AdmitSoundAttack, parameter.AdmitSoundRelease, rate)

	n2 := NewOscillator(parameter.AdmitSoundNote2Freq, parameter.AdmitSoundNoteDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.AdmitSoundNoteDuration, parameter.AdmitSoundAttack, parameter.AdmitSoundRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, parameter.AdmitSoundVolume*master)
}

// CreateRemovalSound generates the crackle for bodies culled at the
// impact limit
func CreateRemovalSound(master float64, rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.RemovalSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.RemovalSoundDuration, parameter.RemovalSoundAttack, parameter.RemovalSoundRelease, rate)
	return newVolume(shaped, parameter.RemovalSoundVolume*master)
}

// CreatePauseSound generates the toggle blip: falling when pausing,
// rising when resuming
func CreatePauseSound(paused bool, master float64, rate beep.SampleRate) beep.Streamer {
	first, second := parameter.PauseSoundHighFreq, parameter.PauseSoundLowFreq
	if !paused {
		first, second = second, first
	}

	n1 := NewOscillator(first, parameter.PauseSoundDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.PauseSoundDuration, parameter.PauseSoundAttack, parameter.PauseSoundRelease, rate)

	n2 := NewOscillator(second, parameter.PauseSoundDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.PauseSoundDuration, parameter.PauseSoundAttack, parameter.PauseSoundRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, parameter.PauseSoundVolume*master)
}
