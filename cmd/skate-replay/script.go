package main

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-skate/input"
	"github.com/lixenwraith/vi-skate/trick"
)

var ErrBadEntry = errors.New("bad script entry")

// Entry is one timed command of a script, exactly one of Trick, Push, Steer or Reset
type Entry struct {
	At    time.Duration `mapstructure:"at"`
	Trick string        `mapstructure:"trick"` // e.g. "down_press"
	Push  bool          `mapstructure:"push"`
	Steer *float64      `mapstructure:"steer"`
	Reset bool          `mapstructure:"reset"`
}

// Script is a headless run of one board
type Script struct {
	Board    string        `mapstructure:"board"`
	Duration time.Duration `mapstructure:"duration"` // zero runs one second past the last entry
	Entries  []Entry       `mapstructure:"input"`
}

// timedCommand is a command bound to the step it is sent before
type timedCommand struct {
	step int
	cmd  input.Command
}

// LoadScript reads a TOML script
func LoadScript(path string) (*Script, error) {
	v := viper.New()
	v.SetDefault("board", "replay")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}

	s := &Script{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("error decoding script: %w", err)
	}
	return s, nil
}

// Command converts the entry to a board command
func (e Entry) Command() (input.Command, error) {
	set := 0
	var cmd input.Command
	if e.Trick != "" {
		in, ok := trick.ParseInput(e.Trick)
		if !ok {
			return input.Command{}, fmt.Errorf("%w: unknown trick input %q", ErrBadEntry, e.Trick)
		}
		cmd = input.Trick(in)
		set++
	}
	if e.Push {
		cmd = input.Push()
		set++
	}
	if e.Steer != nil {
		cmd = input.Steer(*e.Steer)
		set++
	}
	if e.Reset {
		cmd = input.Reset()
		set++
	}
	if set != 1 {
		return input.Command{}, fmt.Errorf("%w: at %v needs exactly one of trick, push, steer, reset", ErrBadEntry, e.At)
	}
	return cmd, nil
}

// schedule converts entries to step-indexed commands, stable for equal times
// Returns the commands and the total number of steps to run. Entries that would never be
// sent, or that overflow a board queue of size queue within one step, are rejected
func (s *Script) schedule(step time.Duration, queue int) ([]timedCommand, int, error) {
	if step <= 0 {
		return nil, 0, fmt.Errorf("%w: non-positive timestep %v", ErrBadEntry, step)
	}

	out := make([]timedCommand, 0, len(s.Entries))
	var last time.Duration
	for _, e := range s.Entries {
		if e.At < 0 {
			return nil, 0, fmt.Errorf("%w: negative time %v", ErrBadEntry, e.At)
		}
		cmd, err := e.Command()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, timedCommand{step: int(e.At / step), cmd: cmd})
		last = max(last, e.At)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].step < out[j].step })

	total := s.Duration
	if total <= 0 {
		total = last + time.Second
	}
	steps := int(total / step)

	perStep := make(map[int]int)
	for _, tc := range out {
		if tc.step >= steps {
			return nil, 0, fmt.Errorf("%w: at %v is past duration %v", ErrBadEntry, time.Duration(tc.step)*step, total)
		}
		perStep[tc.step]++
		if perStep[tc.step] > queue {
			return nil, 0, fmt.Errorf("%w: more than %d commands at %v", ErrBadEntry, queue, time.Duration(tc.step)*step)
		}
	}
	return out, steps, nil
}
