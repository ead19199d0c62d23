package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator stream
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// glide is a sine whose frequency moves linearly from one pitch to another
type glide struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newGlide(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &glide{from: from, to: to, duration: rate.N(duration), rate: rate}
}

func (g *glide) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.duration {
			return i, i > 0
		}
		t := float64(g.position) / float64(g.duration)
		freq := g.from + (g.to-g.from)*t

		val := 2.0 * (g.phase - 0.5)
		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.position++
	}
	return len(samples), true
}

func (g *glide) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePickupSound generates a rising two-note blip
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.PickupSoundNoteDuration

	// E5 then A5
	n1 := NewEnvelope(NewOscillator(659.25, d, WaveSquare, rate), d, parameter.PickupSoundAttack, parameter.PickupSoundRelease, rate)
	n2 := NewEnvelope(NewOscillator(880.0, d, WaveSquare, rate), d, parameter.PickupSoundAttack, parameter.PickupSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), 0.5)
}

// CreateDropSound generates a short low thud
func CreateDropSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DropSoundDuration

	body := NewEnvelope(NewOscillator(160.0, d, WaveSine, rate), d, parameter.DropSoundAttack, parameter.DropSoundRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.DropSoundAttack, parameter.DropSoundRelease, rate)

	return beep.Mix(newVolume(body, 0.8), newVolume(noise, 0.15))
}

// CreateDeliverSound generates a bell with an octave overtone
func CreateDeliverSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DeliverSoundDuration

	// A5 with harmonic one octave up
	fund := NewEnvelope(NewOscillator(880.0, d, WaveSine, rate), d, parameter.DeliverSoundAttack, parameter.DeliverSoundFundamentalRel, rate)
	over := NewEnvelope(NewOscillator(1760.0, d, WaveSine, rate), d, parameter.DeliverSoundAttack, parameter.DeliverSoundOvertoneRelease, rate)

	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// CreateSadSound generates two falling saw notes
func CreateSadSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SadSoundNoteDuration

	n1 := NewEnvelope(newGlide(392.0, 370.0, d, rate), d, parameter.SadSoundAttack, parameter.SadSoundRelease, rate)
	n2 := NewEnvelope(newGlide(330.0, 262.0, 2*d, rate), 2*d, parameter.SadSoundAttack, parameter.SadSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), 0.4)
}

// Synthesize returns the unity-gain streamer of a cue, nil for unknown types
func Synthesize(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundPickup:
		return CreatePickupSound(rate)
	case core.SoundDrop:
		return CreateDropSound(rate)
	case core.SoundDeliver:
		return CreateDeliverSound(rate)
	case core.SoundSad:
		return CreateSadSound(rate)
	default:
		return nil
	}
}
