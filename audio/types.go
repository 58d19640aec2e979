// Package audio synthesizes the board sound cues and plays them through the system speaker
package audio

import (
	"github.com/lixenwraith/vi-skate/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPop   SoundType = iota // Tail snap on pop
	SoundCatch                  // Clean catch
	SoundBail                   // Failed catch
	soundTypeCount
)

var soundNames = [...]string{
	SoundPop:   "pop",
	SoundCatch: "catch",
	SoundBail:  "bail",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool                  `mapstructure:"enabled"`
	SampleRate    int                   `mapstructure:"sample_rate"`
	MasterVolume  float64               `mapstructure:"master_volume"`
	EffectVolumes map[SoundType]float64 `mapstructure:"-"`
}

// DefaultAudioConfig returns default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundPop:   1.0,
			SoundCatch: 0.6,
			SoundBail:  0.5,
		},
	}
}

// SetEffectVolume sets the volume of one effect by name, clamped to [0,1]
// Returns false for unknown names
func (c *AudioConfig) SetEffectVolume(name string, vol float64) bool {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if st.String() == name {
			if vol < 0 {
				vol = 0
			}
			if vol > 1 {
				vol = 1
			}
			if c.EffectVolumes == nil {
				c.EffectVolumes = make(map[SoundType]float64)
			}
			c.EffectVolumes[st] = vol
			return true
		}
	}
	return false
}
