package postgres

import (
	"gorm.io/gorm"

	sectorDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/sector"
	"github.com/ankaahq/ankaa-access/internal/sector"
)

type SectorRepository struct {
	db *gorm.DB
}

func NewSectorRepository(db *gorm.DB) sector.RepositoryAPI {
	return &SectorRepository{db: db}
}

func (r *SectorRepository) GetAll() ([]*sectorDatamodel.Sector, error) {
	var sectors []*sectorDatamodel.Sector
	err := r.db.Order("name ASC").Find(&sectors).Error
	return sectors, err
}

func (r *SectorRepository) GetByID(id int64) (*sectorDatamodel.Sector, error) {
	var s sectorDatamodel.Sector
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SectorRepository) GetByName(name string) (*sectorDatamodel.Sector, error) {
	var s sectorDatamodel.Sector
	err := r.db.Where("name = ?", name).First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SectorRepository) Create(s *sectorDatamodel.Sector) error {
	return r.db.Create(s).Error
}

func (r *SectorRepository) Update(s *sectorDatamodel.Sector) error {
	return r.db.Save(s).Error
}

func (r *SectorRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&sectorDatamodel.Sector{}).Error
}
