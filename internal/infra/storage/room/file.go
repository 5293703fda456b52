package room

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// FileRepository каталог номеров, загружаемый из JSON-файла при старте.
// После загрузки не изменяется, поэтому безопасен для конкурентного чтения
type FileRepository struct {
	rooms []domain.Room
	byID  map[int64]int
}

// NewFileRepository читает и проверяет каталог из файла
func NewFileRepository(path string) (*FileRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: NewFileRepository - read %s: %v", ErrReadCatalog, path, err)
	}

	return NewRepositoryFromJSON(data)
}

// NewRepositoryFromJSON разбирает каталог из JSON-массива номеров
func NewRepositoryFromJSON(data []byte) (*FileRepository, error) {
	var records []roomRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: NewRepositoryFromJSON - unmarshal: %v", ErrDecodeCatalog, err)
	}

	rooms := make([]domain.Room, 0, len(records))
	for _, rec := range records {
		rooms = append(rooms, rec.toDomain())
	}

	return NewMemoryRepository(rooms)
}

// NewMemoryRepository каталог из готового списка номеров
func NewMemoryRepository(rooms []domain.Room) (*FileRepository, error) {
	repo := &FileRepository{
		rooms: make([]domain.Room, 0, len(rooms)),
		byID:  make(map[int64]int, len(rooms)),
	}

	for _, r := range rooms {
		if err := validateRoom(r); err != nil {
			return nil, err
		}
		if _, exists := repo.byID[r.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate room id=%d", ErrInvalidRoom, r.ID)
		}
		repo.byID[r.ID] = len(repo.rooms)
		repo.rooms = append(repo.rooms, r.Clone())
	}

	sort.SliceStable(repo.rooms, func(i, j int) bool { return repo.rooms[i].ID < repo.rooms[j].ID })
	for i, r := range repo.rooms {
		repo.byID[r.ID] = i
	}

	return repo, nil
}

// List возвращает копии всех номеров каталога, упорядоченные по ID
func (r *FileRepository) List(ctx context.Context) ([]domain.Room, error) {
	res := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		res = append(res, room.Clone())
	}
	return res, nil
}

// GetByID возвращает копию номера по ID
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	room := r.rooms[idx].Clone()
	return &room, nil
}
