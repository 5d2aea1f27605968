package sector

import "time"

type Sector struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"column:name;uniqueIndex;not null"`
	Privileges string    `gorm:"column:privileges;not null;default:BASIC"`
	ManagerID  *int64    `gorm:"column:manager_id"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;default:now()"`
}

func (Sector) TableName() string {
	return "sectors"
}
