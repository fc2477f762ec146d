package monitor

import (
	"sync"

	"golang.org/x/time/rate"
)

// LimiterSettings is the reading submission budget that applies to a patient.
// Custom is set when an operator overrode the default for that patient.
type LimiterSettings struct {
	Rate   rate.Limit `json:"rate"`
	Burst  int        `json:"burst"`
	Custom bool       `json:"custom"`
}

type patientLimiter struct {
	limiter  *rate.Limiter
	settings LimiterSettings
}

// RateLimiterStore throttles reading submissions per patient. Every patient
// starts on the default budget until an override is set for them.
type RateLimiterStore struct {
	patients     map[string]*patientLimiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		patients:     make(map[string]*patientLimiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) defaults() LimiterSettings {
	return LimiterSettings{Rate: s.defaultRate, Burst: s.defaultBurst}
}

// entry must be called with mu held.
func (s *RateLimiterStore) entry(patientID string) *patientLimiter {
	p, exists := s.patients[patientID]
	if !exists {
		settings := s.defaults()
		p = &patientLimiter{limiter: rate.NewLimiter(settings.Rate, settings.Burst), settings: settings}
		s.patients[patientID] = p
	}
	return p
}

func (s *RateLimiterStore) GetLimiter(patientID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry(patientID).limiter
}

// SetLimiter overrides the patient's budget with a fresh, full bucket.
func (s *RateLimiterStore) SetLimiter(patientID string, patientRate rate.Limit, patientBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[patientID] = &patientLimiter{
		limiter:  rate.NewLimiter(patientRate, patientBurst),
		settings: LimiterSettings{Rate: patientRate, Burst: patientBurst, Custom: true},
	}
}

// ResetLimiter drops an override. Tokens already spent on the current bucket
// are kept, so a reset never hands out a fresh burst.
func (s *RateLimiterStore) ResetLimiter(patientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.patients[patientID]
	if !exists || !p.settings.Custom {
		return
	}
	p.settings = s.defaults()
	p.limiter.SetLimit(p.settings.Rate)
	p.limiter.SetBurst(p.settings.Burst)
}

func (s *RateLimiterStore) Settings(patientID string) LimiterSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry(patientID).settings
}

// Allow takes one token from the patient's limiter.
func (s *RateLimiterStore) Allow(patientID string) bool {
	return s.GetLimiter(patientID).Allow()
}
