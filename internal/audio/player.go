package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues. Implementations must not block the game loop.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeaker opens the audio device. Volume is linear in 0..1.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes the sound of c into the output.
func (s *Speaker) Play(c Cue) {
	st := NewCueStreamer(c, s.volume, sampleRate)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Open returns a Speaker when enabled, falling back to Nop if the device
// cannot be opened.
func Open(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Nop{}
	}
	s, err := NewSpeaker(volume)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return Nop{}
	}
	logger.Debug("sound enabled", "volume", volume)
	return s
}

// PlayAll plays every cue in order.
func PlayAll(p Player, cues []Cue) {
	for _, c := range cues {
		p.Play(c)
	}
}
