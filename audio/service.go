package audio

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/core"
	"github.com/lixenwraith/baobei/parameter"
)

var ErrAlreadyRunning = errors.New("audio service already running")

// Service plays gameplay cues through the speaker
// Satisfies engine.AudioPlayer; every method is safe from any goroutine
type Service struct {
	settings Settings
	cache    *soundCache
	mixer    *beep.Mixer
	log      *logrus.Entry

	running atomic.Bool
	muted   atomic.Bool

	mu         sync.Mutex // Protects lastPlayed and mixer access outside the speaker lock
	lastPlayed [core.SoundTypeCount]time.Time
	now        func() time.Time

	// Speaker lock hooks, no-ops until Start
	lock   func()
	unlock func()
}

// NewService creates a stopped service, muted when settings disable audio
func NewService(settings Settings, log *logrus.Entry) *Service {
	if settings.SampleRate <= 0 {
		settings.SampleRate = parameter.AudioSampleRate
	}
	s := &Service{
		settings: settings,
		cache:    newSoundCache(beep.SampleRate(settings.SampleRate)),
		mixer:    &beep.Mixer{},
		log:      log.WithField("service", "audio"),
		now:      time.Now,
		lock:     func() {},
		unlock:   func() {},
	}
	s.muted.Store(!settings.Enabled)
	return s
}

// Start opens the speaker and renders cues
// A missing audio device is logged and leaves the service silent
func (s *Service) Start() error {
	if s.running.Load() {
		return ErrAlreadyRunning
	}

	rate := beep.SampleRate(s.settings.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		s.log.WithError(err).Warn("no audio device, running silent")
		return nil
	}

	s.cache.preload()
	s.mu.Lock()
	s.lock, s.unlock = speaker.Lock, speaker.Unlock
	s.mu.Unlock()

	speaker.Play(s.mixer)
	s.running.Store(true)
	s.log.WithField("sample_rate", s.settings.SampleRate).Info("audio started")
	return nil
}

// Stop silences playing cues and releases the speaker
func (s *Service) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	s.mu.Lock()
	s.lock()
	s.mixer.Clear()
	s.unlock()
	s.lock, s.unlock = func() {}, func() {}
	s.mu.Unlock()

	speaker.Close()
	s.log.Info("audio stopped")
}

// Play queues a cue, reports whether it was actually started
// Muted, stopped, unknown and too-frequent cues are dropped
func (s *Service) Play(st core.SoundType) bool {
	if !s.running.Load() || s.muted.Load() {
		return false
	}
	if st < 0 || st >= core.SoundTypeCount {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if last := s.lastPlayed[st]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}

	buf := s.cache.get(st)
	if buf == nil {
		return false
	}
	s.lastPlayed[st] = now

	vol := s.settings.Volumes[st] * s.settings.MasterVolume
	stream := newVolume(buf.Streamer(0, buf.Len()), vol)

	s.lock()
	s.mixer.Add(stream)
	s.unlock()
	return true
}

// ToggleMute flips mute and returns the new state
func (s *Service) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			if !old {
				s.mu.Lock()
				s.lock()
				s.mixer.Clear()
				s.unlock()
				s.mu.Unlock()
			}
			s.log.WithField("muted", !old).Debug("audio mute toggled")
			return !old
		}
	}
}

func (s *Service) IsMuted() bool {
	return s.muted.Load()
}

func (s *Service) IsRunning() bool {
	return s.running.Load()
}

// Active returns the number of cues still playing
func (s *Service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
	defer s.unlock()
	return s.mixer.Len()
}
