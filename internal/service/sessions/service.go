package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBooking/internal/wizard"
)

// Service реестр сессий мастера: один контроллер на посетителя.
// Неактивные сессии удаляются по истечении ttl
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session

	factory ControllerFactory
	ttl     time.Duration
	clock   TimeProvider
	logger  Logger
}

type session struct {
	controller *wizard.Controller
	lastSeen   time.Time
}

// NewService создает новый реестр сессий
func NewService(factory ControllerFactory, ttl time.Duration, logger Logger) *Service {
	return &Service{
		sessions: make(map[string]*session),
		factory:  factory,
		ttl:      ttl,
		clock:    &wizard.RealTimeProvider{},
		logger:   logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.clock = tp
	return s
}

// Start создает сессию. Пустые параметры дают мастер на первом шаге,
// иначе мастер восстанавливается по ссылке
func (s *Service) Start(ctx context.Context, params wizard.LinkParams) *wizard.Controller {
	id := uuid.NewString()

	var c *wizard.Controller
	if params.IsEmpty() {
		c = s.factory.New(id)
	} else {
		c = s.factory.FromLink(ctx, id, params)
	}

	s.mu.Lock()
	s.sessions[id] = &session{controller: c, lastSeen: s.clock.Now()}
	total := len(s.sessions)
	s.mu.Unlock()

	s.logger.Info("Sessions: started session=%s at step=%s, active=%d", id, c.Step(), total)

	return c
}

// Get возвращает контроллер сессии и продлевает ее жизнь
func (s *Service) Get(id string) (*wizard.Controller, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: session id %q", ErrInvalidInput, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := s.clock.Now()
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	sess.lastSeen = now
	return sess.controller, nil
}

// Count количество активных сессий
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup удаляет истекшие сессии. Сессии с незавершенной операцией не удаляются
func (s *Service) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0

	for id, sess := range s.sessions {
		if !s.expired(sess, now) || sess.controller.Busy() {
			continue
		}
		delete(s.sessions, id)
		removed++
	}

	if removed > 0 {
		s.logger.Info("Sessions: removed %d expired sessions, active=%d", removed, len(s.sessions))
	}

	return removed
}

// Run периодически удаляет истекшие сессии до отмены контекста
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

func (s *Service) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}
