package confirmation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/psqlbuilder"
)

// Repository хранилище подтверждений в PostgreSQL (таблица confirmations)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подтверждений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет подтверждение. При конфликте номера возвращает ErrDuplicateNumber
func (r *Repository) Create(ctx context.Context, rec domain.ConfirmationRecord) error {
	data, err := toRow(rec)
	if err != nil {
		return err
	}

	query, args, err := insertQuery(data)
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Create - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDuplicateNumber
	}

	return nil
}

// GetByNumber получает подтверждение по номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (domain.ConfirmationRecord, error) {
	query, args, err := getByNumberQuery(number)
	if err != nil {
		return domain.ConfirmationRecord{}, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var data row
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&data.Number,
		&data.IssuedAt,
		&data.CheckIn,
		&data.CheckOut,
		&data.Guests,
		&data.RoomID,
		&data.TotalPrice,
		&data.GuestEmail,
		&data.Draft,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ConfirmationRecord{}, ErrConfirmationNotFound
	}
	if err != nil {
		return domain.ConfirmationRecord{}, fmt.Errorf("%w: GetByNumber - scan confirmation: %v", ErrScanRow, err)
	}

	return fromRow(data)
}

// Exists проверяет, занят ли номер
func (r *Repository) Exists(ctx context.Context, number string) (bool, error) {
	query, args, err := existsQuery(number)
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

func insertQuery(data row) (string, []interface{}, error) {
	return psqlbuilder.Insert("confirmations").
		Columns(
			"number",
			"issued_at",
			"check_in",
			"check_out",
			"guests",
			"room_id",
			"total_price",
			"guest_email",
			"draft",
		).
		Values(
			data.Number,
			data.IssuedAt,
			data.CheckIn,
			data.CheckOut,
			data.Guests,
			data.RoomID,
			data.TotalPrice,
			data.GuestEmail,
			data.Draft,
		).
		Suffix("ON CONFLICT (number) DO NOTHING").
		ToSql()
}

func getByNumberQuery(number string) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"number",
		"issued_at",
		"check_in",
		"check_out",
		"guests",
		"room_id",
		"total_price",
		"guest_email",
		"draft",
	).
		From("confirmations").
		Where(squirrel.Eq{"number": number}).
		ToSql()
}

func existsQuery(number string) (string, []interface{}, error) {
	sub := psqlbuilder.Select("1").
		From("confirmations").
		Where(squirrel.Eq{"number": number})

	subQuery, args, err := sub.ToSql()
	if err != nil {
		return "", nil, err
	}

	return "SELECT EXISTS (" + subQuery + ")", args, nil
}
