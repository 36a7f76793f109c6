package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type settings struct {
	rules     Rules
	logger    *logrus.Logger
	rand      *rand.Rand
	listeners []interface{}
}

type Option func(*settings)

func WithRules(rules Rules) Option {
	return func(s *settings) {
		s.rules = rules
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithRand fixes the source used for every shuffle the game performs.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) {
		s.rand = r
	}
}

// WithListener registers an event listener before the first card is turned,
// see event.Hub.AddListener.
func WithListener(listener interface{}) Option {
	return func(s *settings) {
		s.listeners = append(s.listeners, listener)
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{rules: DefaultRules()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}
