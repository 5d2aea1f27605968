package task

import "time"

type Task struct {
	ID           int64      `gorm:"primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Status       string     `gorm:"column:status;not null;default:PENDING"`
	SectorID     *int64     `gorm:"column:sector_id"`
	CustomerID   *int64     `gorm:"column:customer_id"`
	HasLayout    bool       `gorm:"column:has_layout;default:false"`
	CutRequested bool       `gorm:"column:cut_requested;default:false"`
	StartedAt    *time.Time `gorm:"column:started_at"`
	FinishedAt   *time.Time `gorm:"column:finished_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Task) TableName() string {
	return "tasks"
}
