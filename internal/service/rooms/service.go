package rooms

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	roomsRepo "github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/rooms"
)

// GroupAll значение фильтра, возвращающее весь каталог
const GroupAll = "all"

// Service сервис каталога залов.
// Каталог создаётся лениво: при первом обращении выполняются
// переименования унаследованных залов, засев недостающих строк и
// проставление групп для строк без group_tag.
type Service struct {
	store        RoomStorage
	logger       Logger
	eventEnabled bool
	defaultZone  *time.Location
	eventZone    *time.Location

	mu     sync.Mutex
	seeded bool
}

// NewService создает новый экземпляр сервиса каталога залов
func NewService(store RoomStorage, eventEnabled bool, defaultZone, eventZone *time.Location, logger Logger) *Service {
	return &Service{
		store:        store,
		logger:       logger,
		eventEnabled: eventEnabled,
		defaultZone:  defaultZone,
		eventZone:    eventZone,
	}
}

// EnsureCatalog приводит каталог к актуальному состоянию.
// Выполняется один раз; при ошибке повторяется на следующем вызове.
func (s *Service) EnsureCatalog(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded {
		return nil
	}

	for _, seed := range domain.AllRoomSeeds(s.eventEnabled) {
		if err := s.ensureSeed(ctx, seed); err != nil {
			s.logger.Error("EnsureCatalog: seed %q failed: %v", seed.Name, err)
			return fmt.Errorf("%w: EnsureCatalog - seed %q: %v", ErrInternal, seed.Name, err)
		}
	}

	if err := s.backfillGroups(ctx); err != nil {
		s.logger.Error("EnsureCatalog: group backfill failed: %v", err)
		return fmt.Errorf("%w: EnsureCatalog - backfill: %v", ErrInternal, err)
	}

	s.seeded = true
	s.logger.Info("EnsureCatalog: room catalog ready (event rooms enabled=%t)", s.eventEnabled)
	return nil
}

// ensureSeed переименовывает унаследованный зал и создает недостающий.
// Переименование пропускается, если зал с новым именем уже существует:
// две строки с одним именем каталог не допускает.
func (s *Service) ensureSeed(ctx context.Context, seed domain.RoomSeed) error {
	if seed.LegacyName != "" {
		if legacy, err := s.store.GetByName(ctx, seed.LegacyName); err == nil {
			if _, err := s.store.GetByName(ctx, seed.Name); errors.Is(err, roomsRepo.ErrNotFound) {
				if err := s.store.Rename(ctx, legacy.ID, seed.Name); err != nil {
					return err
				}
				s.logger.Info("ensureSeed: renamed room %q to %q", seed.LegacyName, seed.Name)
			}
		} else if !errors.Is(err, roomsRepo.ErrNotFound) {
			return err
		}
	}

	_, err := s.store.GetByName(ctx, seed.Name)
	if errors.Is(err, roomsRepo.ErrNotFound) {
		if _, err := s.store.Create(ctx, seed.Name, seed.Group); err != nil {
			if errors.Is(err, roomsRepo.ErrDuplicateName) {
				return nil
			}
			return err
		}
		s.logger.Info("ensureSeed: created room %q (group=%s)", seed.Name, seed.Group)
		return nil
	}
	return err
}

// backfillGroups проставляет группу строкам, созданным до появления
// колонки group_tag. Группа выводится из списков засева по имени.
func (s *Service) backfillGroups(ctx context.Context) error {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, room := range all {
		inferred := domain.SeedGroupForName(room.Name)
		if inferred != domain.GroupStandard && room.Group != inferred {
			if err := s.store.UpdateGroup(ctx, room.ID, inferred); err != nil {
				return err
			}
			s.logger.Info("backfillGroups: room %q tagged as %s", room.Name, inferred)
		}
	}
	return nil
}

// List возвращает залы каталога по фильтру группы.
// Пустой фильтр и неизвестные значения дают основной каталог;
// GroupAll возвращает всё. Залы мероприятия при выключенном флаге
// не возвращаются ни одним фильтром.
func (s *Service) List(ctx context.Context, group string) ([]*domain.Room, error) {
	if err := s.EnsureCatalog(ctx); err != nil {
		return nil, err
	}

	all, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: storage error: %v", err)
		return nil, fmt.Errorf("%w: List - storage error: %v", ErrInternal, err)
	}

	out := make([]*domain.Room, 0, len(all))
	for _, room := range all {
		if room.Group == domain.GroupEvent && !s.eventEnabled {
			continue
		}
		if group == GroupAll || room.Group == domain.ParseRoomGroup(group) {
			out = append(out, room)
		}
	}
	return out, nil
}

// GetByID возвращает зал по идентификатору, включая синтетические
// идентификаторы засева, выданные до создания строки в хранилище
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if err := s.EnsureCatalog(ctx); err != nil {
		return nil, err
	}
	return s.resolve(ctx, id)
}

// ResolveRoomID превращает внешний идентификатор зала в строку каталога
func (s *Service) ResolveRoomID(ctx context.Context, id string) (*domain.Room, error) {
	if err := s.EnsureCatalog(ctx); err != nil {
		return nil, err
	}
	return s.resolve(ctx, id)
}

func (s *Service) resolve(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.store.GetByID(ctx, id)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, roomsRepo.ErrNotFound) {
		s.logger.Error("resolve: storage error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: resolve - storage error: %v", ErrInternal, err)
	}

	// Синтетический идентификатор засева отображается на строку по имени
	for _, seed := range domain.AllRoomSeeds(s.eventEnabled) {
		if seed.ID == id {
			room, err := s.store.GetByName(ctx, seed.Name)
			if err == nil {
				return room, nil
			}
			if !errors.Is(err, roomsRepo.ErrNotFound) {
				return nil, fmt.Errorf("%w: resolve - storage error: %v", ErrInternal, err)
			}
			break
		}
	}
	return nil, ErrRoomNotFound
}

// GoverningZone возвращает управляющий часовой пояс группы залов.
// Все решения "прошло или нет" для зала принимаются в этом поясе.
func (s *Service) GoverningZone(group domain.RoomGroup) *time.Location {
	if group == domain.GroupEvent {
		return s.eventZone
	}
	return s.defaultZone
}

// ZoneForRoomID возвращает управляющий пояс зала.
// Если зал не удаётся разрешить, используется пояс по умолчанию.
func (s *Service) ZoneForRoomID(ctx context.Context, id string) *time.Location {
	room, err := s.resolve(ctx, id)
	if err != nil {
		s.logger.Warn("ZoneForRoomID: cannot resolve room id=%s, using default zone: %v", id, err)
		return s.defaultZone
	}
	return s.GoverningZone(room.Group)
}
