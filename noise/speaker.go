package noise

import (
	"math"
	"sync"
	"time"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	// maxLoudness maps to full volume
	maxLoudness = 60
)

// Speaker renders noises as short rumbles through the system audio device
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	listener    func() gruid.Point
	initialized bool
}

// NewSpeaker creates a speaker; listener reports where the player stands and may be nil
func NewSpeaker(listener func() gruid.Point) *Speaker {
	return &Speaker{
		mixer:    &beep.Mixer{},
		listener: listener,
	}
}

// Initialize opens the audio device
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup silences the mixer
func (s *Speaker) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

func (s *Speaker) Noise(at gruid.Point, loudness int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	vol := Volume(loudness, s.distance(at))
	if vol <= 0 {
		return
	}
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(Duration(loudness)), NewRumble(sampleRate, vol)))
	speaker.Unlock()
}

func (s *Speaker) distance(at gruid.Point) int {
	if s.listener == nil {
		return 0
	}
	return paths.DistanceChebyshev(at, s.listener())
}

// Volume attenuates loudness linearly with distance into [0,1]
func Volume(loudness, distance int) float64 {
	heard := loudness - distance
	if heard <= 0 {
		return 0
	}
	return math.Min(1, float64(heard)/maxLoudness)
}

// Duration grows with loudness, from 80ms up to 600ms
func Duration(loudness int) time.Duration {
	ms := 80 + 10*loudness
	return time.Duration(min(ms, 600)) * time.Millisecond
}

// Rumble is decaying low-frequency noise
type Rumble struct {
	sr     beep.SampleRate
	volume float64
	pos    int
	seed   uint32
}

// NewRumble creates a rumble generator
func NewRumble(sr beep.SampleRate, volume float64) *Rumble {
	return &Rumble{sr: sr, volume: volume, seed: 0x2545f491}
}

func (r *Rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(r.pos) / float64(r.sr)
		// xorshift keeps the output reproducible
		r.seed ^= r.seed << 13
		r.seed ^= r.seed >> 17
		r.seed ^= r.seed << 5
		grain := float64(r.seed)/float64(math.MaxUint32)*2 - 1

		tone := math.Sin(2 * math.Pi * 55 * t)
		v := r.volume * math.Exp(-6*t) * (0.6*tone + 0.4*grain) * 0.3
		samples[i][0] = v
		samples[i][1] = v
		r.pos++
	}
	return len(samples), true
}

func (r *Rumble) Err() error { return nil }
