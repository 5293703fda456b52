package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/psqlbuilder"
)

var roomColumns = []string{
	"id",
	"name",
	"nightly_rate",
	"capacity",
	"bed_type",
	"size_sq_ft",
	"amenities",
	"description",
	"images",
	"is_available",
}

// Repository каталог номеров в PostgreSQL (таблица rooms)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все номера каталога
func (r *Repository) List(ctx context.Context) ([]domain.Room, error) {
	query, args, err := listQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	query, args, err := getByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

func listQuery() (string, []interface{}, error) {
	return psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("id ASC").
		ToSql()
}

func getByIDQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(s scanner) (domain.Room, error) {
	var room domain.Room
	var bedType, description sql.NullString
	var sizeSqFt sql.NullInt64

	err := s.Scan(
		&room.ID,
		&room.Name,
		&room.NightlyRate,
		&room.Capacity,
		&bedType,
		&sizeSqFt,
		pq.Array(&room.Amenities),
		&description,
		pq.Array(&room.Images),
		&room.IsAvailable,
	)
	if err != nil {
		return domain.Room{}, err
	}

	room.BedType = bedType.String
	room.SizeSqFt = int(sizeSqFt.Int64)
	room.Description = description.String
	room.Amenities = domain.NormalizeAmenities(room.Amenities)

	return room, nil
}
