package get_confirmation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	confirmationRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/confirmation"
)

// UseCase use case получения выпущенного подтверждения (для печати и повторного показа)
type UseCase struct {
	repo   ConfirmationRepository
	logger Logger
}

func NewUseCase(repo ConfirmationRepository, logger Logger) *UseCase {
	return &UseCase{repo: repo, logger: logger}
}

// Execute получает подтверждение по номеру
func (uc *UseCase) Execute(ctx context.Context, number string) (*domain.ConfirmationRecord, error) {
	number = strings.TrimSpace(number)
	uc.logger.Info("GetConfirmation: number=%s", number)

	if number == "" {
		return nil, fmt.Errorf("%w: number is required", ErrInvalidInput)
	}

	rec, err := uc.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, confirmationRepo.ErrConfirmationNotFound) {
			uc.logger.Warn("GetConfirmation: number=%s not found", number)
			return nil, ErrConfirmationNotFound
		}
		uc.logger.Error("GetConfirmation: failed to get number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: failed to get confirmation: %v", ErrInternal, err)
	}

	return &rec, nil
}
