package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var (
	placeCue  = []tone{{880, 50 * time.Millisecond}}
	rejectCue = []tone{{220, 80 * time.Millisecond}}
	winCue    = []tone{{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}}
	loseCue   = []tone{{330, 200 * time.Millisecond}, {165, 400 * time.Millisecond}}
)

// Cues plays short sine tones for game events. The zero value is silent.
type Cues struct {
	enabled bool
}

// NewCues opens the speaker unless muted.
func NewCues(mute bool) (*Cues, error) {
	if mute {
		return &Cues{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Cues{}, err
	}
	return &Cues{enabled: true}, nil
}

func (c *Cues) Play(tones []tone) {
	if !c.enabled {
		return
	}

	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return
		}
		streamers = append(streamers, beep.Take(sampleRate.N(t.duration), sine))
	}
	speaker.Play(beep.Seq(streamers...))
}

func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
	}
}
