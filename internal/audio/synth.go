package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing freq for duration.
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
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
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

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = max(float64(remaining)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of a cue melody.
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 30 * time.Millisecond
)

// melodies are the note sequences of every cue.
var melodies = [cueCount][]note{
	CueLock:      {{196.00, 40 * time.Millisecond, WaveTriangle}},
	CueLineClear: {{523.25, 70 * time.Millisecond, WaveSquare}, {659.25, 90 * time.Millisecond, WaveSquare}},
	CueTetris: {
		{523.25, 60 * time.Millisecond, WaveSquare},
		{659.25, 60 * time.Millisecond, WaveSquare},
		{783.99, 60 * time.Millisecond, WaveSquare},
		{1046.50, 160 * time.Millisecond, WaveSquare},
	},
	CueLevelUp: {{440.00, 80 * time.Millisecond, WaveSine}, {880.00, 140 * time.Millisecond, WaveSine}},
	CueHold:    {{330.00, 50 * time.Millisecond, WaveSine}},
	CueGameOver: {
		{392.00, 150 * time.Millisecond, WaveTriangle},
		{311.13, 150 * time.Millisecond, WaveTriangle},
		{261.63, 300 * time.Millisecond, WaveTriangle},
	},
}

// Duration returns how long the sound of c lasts.
func Duration(c Cue) time.Duration {
	if c < 0 || c >= cueCount {
		return 0
	}
	var total time.Duration
	for _, n := range melodies[c] {
		total += n.duration
	}
	return total
}

// NewCueStreamer builds the sound of c at the given volume, or nil for an
// unknown cue.
func NewCueStreamer(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	if c < 0 || c >= cueCount {
		return nil
	}
	notes := make([]beep.Streamer, 0, len(melodies[c]))
	for _, n := range melodies[c] {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate)
		notes = append(notes, NewEnvelope(osc, n.duration, noteAttack, noteRelease, rate))
	}
	return withVolume(beep.Seq(notes...), vol)
}
