package parameter

import "time"

// Audio engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume (0..1)
	AudioMasterVolume = 0.7
)

// Pop: short noise snap over a low thump
const (
	PopSoundDuration = 90 * time.Millisecond
	PopSoundAttack   = 2 * time.Millisecond
	PopSoundRelease  = 70 * time.Millisecond
	PopThumpFreq     = 110.0
)

// Catch: bright two-note click
const (
	CatchNote1Duration = 40 * time.Millisecond
	CatchNote2Duration = 120 * time.Millisecond
	CatchSoundAttack   = 3 * time.Millisecond
	CatchNote1Release  = 20 * time.Millisecond
	CatchNote2Release  = 90 * time.Millisecond
	CatchNote1Freq     = 659.25
	CatchNote2Freq     = 987.77
)

// Bail: harsh low saw
const (
	BailSoundDuration = 220 * time.Millisecond
	BailSoundAttack   = 5 * time.Millisecond
	BailSoundRelease  = 150 * time.Millisecond
	BailSoundFreq     = 80.0
)

// Pitch glides, as end frequency of the layer
const (
	PopThumpEndFreq  = 55.0
	BailSoundEndFreq = 50.0
)
