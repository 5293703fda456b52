package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	confirmationRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/confirmation"
)

// UseCase use case выпуска подтверждения бронирования
type UseCase struct {
	repo         ConfirmationRepository
	notifier     Notifier
	delay        Delay
	metrics      Metrics
	newNumber    NumberGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ConfirmationRepository,
	notifier Notifier,
	delay Delay,
	metrics Metrics,
	newNumber NumberGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		notifier:     notifier,
		delay:        delay,
		metrics:      metrics,
		newNumber:    newNumber,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute имитирует обработку, выпускает подтверждение с уникальным номером и сохраняет его.
// Ошибка отправки письма не отменяет подтверждение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ConfirmationRecord, error) {
	draft := req.Draft
	offer := draft.Offer()

	uc.logger.Info("ConfirmBooking: session=%s, room=%d, checkIn=%s, nights=%d, total=%d",
		req.SessionID, offer.Room.ID, draft.Stay().CheckIn.Format(domain.DateFormat), draft.Stay().Nights(), draft.TotalPrice())

	// 1. Имитация обработки
	if err := uc.delay.Wait(ctx); err != nil {
		uc.logger.Warn("ConfirmBooking: session=%s aborted: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: Execute - wait: %v", ErrAborted, err)
	}

	// 2. Подбираем свободный номер и сохраняем подтверждение
	now := uc.timeProvider.Now()

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number := uc.newNumber(now)

		exists, err := uc.repo.Exists(ctx, number)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to check number %s: %v", number, err)
			return nil, fmt.Errorf("%w: failed to check number: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("ConfirmBooking: number %s already taken, attempt %d", number, attempt)
			continue
		}

		rec, err := draft.Issue(number, now)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to issue record: %v", err)
			return nil, fmt.Errorf("%w: failed to issue record: %v", ErrInternal, err)
		}

		if err := uc.repo.Create(ctx, rec); err != nil {
			if errors.Is(err, confirmationRepo.ErrDuplicateNumber) {
				uc.logger.Warn("ConfirmBooking: number %s taken concurrently, attempt %d", number, attempt)
				continue
			}
			uc.logger.Error("ConfirmBooking: failed to save confirmation %s: %v", number, err)
			return nil, fmt.Errorf("%w: failed to save confirmation: %v", ErrInternal, err)
		}

		uc.metrics.ConfirmationIssued()
		uc.logger.Info("ConfirmBooking: session=%s issued %s, total=%d", req.SessionID, number, rec.TotalPrice())

		// 3. Передаем подтверждение во внешний сервис
		if err := uc.notifier.SendConfirmation(ctx, rec); err != nil {
			uc.logger.Warn("ConfirmBooking: failed to send confirmation %s: %v", number, err)
		}

		return &rec, nil
	}

	uc.logger.Error("ConfirmBooking: session=%s no free number after %d attempts", req.SessionID, maxNumberAttempts)
	return nil, ErrNumberExhausted
}
