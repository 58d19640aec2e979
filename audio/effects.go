package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-skate/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample returns the wave value at phase in [0,1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// oscillator is a mono wave duplicated to both channels, gliding linearly from one frequency to another
type oscillator struct {
	wave     WaveType
	from, to float64
	rate     float64
	phase    float64
	pos, n   int
}

// NewOscillator creates a fixed-frequency oscillator lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newGlide(wave, freq, freq, duration, rate)
}

func newGlide(wave WaveType, from, to float64, duration time.Duration, rate beep.SampleRate) *oscillator {
	return &oscillator{wave: wave, from: from, to: to, rate: float64(rate), n: rate.N(duration)}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.n {
			return i, i > 0
		}
		v := o.wave.sample(o.phase)
		samples[i] = [2]float64{v, v}

		freq := o.from + (o.to-o.from)*float64(o.pos)/float64(o.n)
		_, o.phase = math.Modf(o.phase + freq/o.rate)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope is a linear attack/sustain/release gain over a fixed length
type envelope struct {
	src           beep.Streamer
	attack, total int
	releaseStart  int
	release       int
	pos           int
}

// NewEnvelope wraps s with a linear attack and release over duration
// Release is shortened when attack and release overlap
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		src:          s,
		attack:       att,
		total:        total,
		release:      rel,
		releaseStart: total - rel,
	}
}

// gain returns the envelope level at sample position p
func (e *envelope) gain(p int) float64 {
	switch {
	case p < e.attack:
		return float64(p) / float64(e.attack)
	case e.release > 0 && p >= e.releaseStart:
		return max(0, float64(e.total-p)/float64(e.release))
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.src.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// layer is one shaped tone of a cue
type layer struct {
	wave            WaveType
	from, to        float64 // Hz, equal for a steady tone
	dur             time.Duration
	attack, release time.Duration
	gain            float64
}

func (l layer) build(rate beep.SampleRate) beep.Streamer {
	osc := newGlide(l.wave, l.from, l.to, l.dur, rate)
	return newVolume(NewEnvelope(osc, l.dur, l.attack, l.release, rate), l.gain)
}

// cue is a set of layers played together, or one after another when sequential
type cue struct {
	layers     []layer
	sequential bool
}

var cues = map[SoundType]cue{
	// Tail snap: noise crack over a falling thump
	SoundPop: {layers: []layer{
		{WaveNoise, 0, 0, parameter.PopSoundDuration, parameter.PopSoundAttack, parameter.PopSoundRelease / 2, 0.4},
		{WaveSine, parameter.PopThumpFreq, parameter.PopThumpEndFreq, parameter.PopSoundDuration, parameter.PopSoundAttack, parameter.PopSoundRelease, 0.8},
	}},
	// Clean landing: rising two-note click
	SoundCatch: {sequential: true, layers: []layer{
		{WaveSquare, parameter.CatchNote1Freq, parameter.CatchNote1Freq, parameter.CatchNote1Duration, parameter.CatchSoundAttack, parameter.CatchNote1Release, 1},
		{WaveSquare, parameter.CatchNote2Freq, parameter.CatchNote2Freq, parameter.CatchNote2Duration, parameter.CatchSoundAttack, parameter.CatchNote2Release, 1},
	}},
	// Failed catch: sagging low buzz
	SoundBail: {layers: []layer{
		{WaveSaw, parameter.BailSoundFreq, parameter.BailSoundEndFreq, parameter.BailSoundDuration, parameter.BailSoundAttack, parameter.BailSoundRelease, 1},
	}},
}

// GetSoundEffect returns a fresh streamer for soundType scaled by the effect and master volume
// Returns nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	c, ok := cues[soundType]
	if !ok {
		return nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	parts := make([]beep.Streamer, len(c.layers))
	for i, l := range c.layers {
		parts[i] = l.build(rate)
	}

	var s beep.Streamer
	if c.sequential {
		s = beep.Seq(parts...)
	} else {
		s = beep.Mix(parts...)
	}
	return newVolume(s, cfg.EffectVolumes[soundType]*cfg.MasterVolume)
}

// CreatePopSound generates the tail snap
func CreatePopSound(cfg *AudioConfig) beep.Streamer { return GetSoundEffect(SoundPop, cfg) }

// CreateCatchSound generates the clean landing click
func CreateCatchSound(cfg *AudioConfig) beep.Streamer { return GetSoundEffect(SoundCatch, cfg) }

// CreateBailSound generates the failed catch buzz
func CreateBailSound(cfg *AudioConfig) beep.Streamer { return GetSoundEffect(SoundBail, cfg) }
