package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/askhatir/lms-service/internal/repository"
	"github.com/askhatir/lms-service/pkg/kafka"
	"github.com/askhatir/lms-service/pkg/keylock"
)

// Config carries the circulation policy constants.
type Config struct {
	BorrowLimit    int `yaml:"borrowLimit" envconfig:"BORROW_LIMIT" default:"3"`
	FinePerDay     int `yaml:"finePerDay" envconfig:"FINE_PER_DAY" default:"5"`
	LoanPeriodDays int `yaml:"loanPeriodDays" envconfig:"LOAN_PERIOD_DAYS" default:"14"`
}

// Enqueuer publishes activity events onto the stats stream.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

type Service struct {
	log   *zap.Logger
	repo  repository.Repository
	queue Enqueuer
	cfg   Config

	// locks serializes check-then-act sequences per book id
	locks *keylock.KeyLock

	// now is swapped out in tests
	now func() time.Time
}

func NewService(repo repository.Repository, queue Enqueuer, cfg Config, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		repo:  repo,
		queue: queue,
		cfg:   cfg,
		locks: keylock.New(),
		now:   time.Now,
	}
}

// WithClock overrides the service clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// publish sends an activity event. Stats are best effort: a broker failure
// never fails the operation that produced the event.
func (s *Service) publish(ev kafka.ActivityEvent) {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(kafka.ActivityTopic, ev); err != nil {
		s.log.Warn("publish activity event", zap.String("type", string(ev.EventType)), zap.Error(err))
	}
}
