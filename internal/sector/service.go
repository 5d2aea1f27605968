package sector

import (
	"log/slog"
	"time"

	sectorDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/sector"
)

type RepositoryAPI interface {
	GetAll() ([]*sectorDatamodel.Sector, error)
	GetByID(id int64) (*sectorDatamodel.Sector, error)
	GetByName(name string) (*sectorDatamodel.Sector, error)
	Create(s *sectorDatamodel.Sector) error
	Update(s *sectorDatamodel.Sector) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Sector, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load sectors", "error", err)
		return nil, err
	}

	sectors := make([]*Sector, 0, len(rows))
	for _, row := range rows {
		sectors = append(sectors, FromDataModel(row))
	}
	return sectors, nil
}

func (s *Service) GetByID(id int64) (*Sector, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(dto CreateSectorDTO) (*Sector, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	sec := NewSector(dto.Name, dto.Privileges)
	sec.ManagerID = dto.ManagerID

	dm := ToDataModel(sec)
	if err := s.repo.Create(dm); err != nil {
		s.logger.Error("failed to create sector", "name", dto.Name, "error", err)
		return nil, err
	}

	sec.ID = dm.ID
	s.logger.Info("sector created", "sector_id", sec.ID, "name", sec.Name, "privileges", sec.Privileges)
	return sec, nil
}

func (s *Service) Update(id int64, dto UpdateSectorDTO) (*Sector, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	if dto.Name != nil {
		row.Name = *dto.Name
	}
	if dto.Privileges != nil {
		if !ValidPrivilege(*dto.Privileges) {
			return nil, ErrInvalidPrivilege
		}
		row.Privileges = string(*dto.Privileges)
	}
	if dto.ManagerID != nil {
		row.ManagerID = dto.ManagerID
	}
	row.UpdatedAt = time.Now()

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update sector", "sector_id", id, "error", err)
		return nil, err
	}

	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// AssignManager makes the user the leader of the sector. One sector has at
// most one manager.
func (s *Service) AssignManager(sectorID, userID int64) (*Sector, error) {
	id := userID
	return s.Update(sectorID, UpdateSectorDTO{ManagerID: &id})
}
