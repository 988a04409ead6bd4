// Package reveal stages the entrance of page sections as they scroll into
// view. A Section flips from hidden to visible the first time its region
// crosses the reveal threshold and stays visible until it is unmounted.
package reveal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

type Direction int

const (
	Up Direction = iota
	Left
	Right
	Zoom
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Zoom:
		return "zoom"
	default:
		return "up"
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "up":
		return Up, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "zoom":
		return Zoom, nil
	}
	return Up, fmt.Errorf("reveal: unknown direction %q", s)
}

// DefaultThreshold is used by pages that do not pick their own.
const DefaultThreshold = 0.1

var (
	ErrThreshold = errors.New("reveal: threshold must be within [0,1]")
	ErrDelay     = errors.New("reveal: delay must not be negative")
	ErrMounted   = errors.New("reveal: section already mounted")
)

type Section struct {
	dir   Direction
	delay time.Duration

	mu        sync.Mutex
	threshold float64
	visible   bool
	mounted   bool
	gen       uint64
	obs       Observer
	target    Rect
	sub       Subscription
}

func New(dir Direction, threshold float64, delay time.Duration) (*Section, error) {
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}
	if delay < 0 {
		return nil, ErrDelay
	}
	return &Section{dir: dir, threshold: threshold, delay: delay}, nil
}

func checkThreshold(t float64) error {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return ErrThreshold
	}
	return nil
}

func (s *Section) Direction() Direction  { return s.dir }
func (s *Section) Delay() time.Duration { return s.delay }

func (s *Section) Threshold() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threshold
}

func (s *Section) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *Section) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// Mount starts observing target. A section holds at most one subscription.
func (s *Section) Mount(obs Observer, target Rect) error {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return ErrMounted
	}
	s.mounted = true
	s.gen++
	gen := s.gen
	s.obs, s.target = obs, target
	threshold := s.threshold
	s.mu.Unlock()

	// Observe may deliver the first entry synchronously, so the lock is not
	// held across it.
	sub := obs.Observe(target, threshold, func(e Entry) { s.handle(gen, e) })

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted || s.gen != gen {
		sub.Cancel()
		return nil
	}
	s.sub = sub
	return nil
}

// Unmount cancels the observation. Entries arriving afterwards are dropped.
func (s *Section) Unmount() {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.mounted = false
	s.obs = nil
	s.gen++
	s.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

// SetThreshold replaces the threshold. A mounted section drops its
// subscription and observes again under the new value.
func (s *Section) SetThreshold(t float64) error {
	if err := checkThreshold(t); err != nil {
		return err
	}
	s.mu.Lock()
	if s.threshold == t {
		s.mu.Unlock()
		return nil
	}
	s.threshold = t
	obs, target, mounted := s.obs, s.target, s.mounted
	s.mu.Unlock()

	if !mounted {
		return nil
	}
	s.Unmount()
	return s.Mount(obs, target)
}

func (s *Section) handle(gen uint64, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted || gen != s.gen {
		return
	}
	if e.Intersecting {
		s.visible = true
	}
}
