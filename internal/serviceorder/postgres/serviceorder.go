package postgres

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/ankaahq/ankaa-access/internal/authz"
	orderDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/serviceorder"
	"github.com/ankaahq/ankaa-access/internal/serviceorder"
)

type ServiceOrderRepository struct {
	db *gorm.DB
}

func NewServiceOrderRepository(db *gorm.DB) serviceorder.Repository {
	return &ServiceOrderRepository{db: db}
}

func (r *ServiceOrderRepository) Create(order *orderDatamodel.ServiceOrder) error {
	return r.db.Create(order).Error
}

func (r *ServiceOrderRepository) GetByID(id int64) (*orderDatamodel.ServiceOrder, error) {
	var order orderDatamodel.ServiceOrder
	err := r.db.Where("id = ?", id).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *ServiceOrderRepository) ListByTypes(types []authz.ServiceOrderType, limit, offset int) ([]*orderDatamodel.ServiceOrder, error) {
	if len(types) == 0 {
		return nil, nil
	}

	var orders []*orderDatamodel.ServiceOrder
	err := r.db.
		Where("type IN ?", typeStrings(types)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	return orders, err
}

func (r *ServiceOrderRepository) CountByTypes(types []authz.ServiceOrderType) (int, error) {
	if len(types) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&orderDatamodel.ServiceOrder{}).
		Where("type IN ?", typeStrings(types)).
		Count(&count).Error
	return int(count), err
}

func (r *ServiceOrderRepository) Update(order *orderDatamodel.ServiceOrder) error {
	return r.db.Save(order).Error
}

// TaskSectorID resolves the sector of the order's parent task. Returns nil
// when the order has no task or the task has no sector.
func (r *ServiceOrderRepository) TaskSectorID(orderID int64) (*int64, error) {
	var sectorID sql.NullInt64
	row := r.db.Raw(
		`SELECT t.sector_id FROM service_orders so JOIN tasks t ON t.id = so.task_id WHERE so.id = ?`,
		orderID,
	).Row()
	if err := row.Scan(&sectorID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if !sectorID.Valid {
		return nil, nil
	}
	v := sectorID.Int64
	return &v, nil
}

func typeStrings(types []authz.ServiceOrderType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}
