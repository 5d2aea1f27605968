package serviceorder

import "time"

type ServiceOrder struct {
	ID          int64      `gorm:"primaryKey"`
	TaskID      *int64     `gorm:"column:task_id"`
	Type        string     `gorm:"column:type;not null"`
	Status      string     `gorm:"column:status;not null;default:PENDING"`
	Description string     `gorm:"column:description;not null"`
	SectorID    *int64     `gorm:"column:sector_id"`
	CreatedByID int64      `gorm:"column:created_by_id;not null"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;default:now()"`
}

func (ServiceOrder) TableName() string {
	return "service_orders"
}
