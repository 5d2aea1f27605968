package postgres

import (
	"gorm.io/gorm"

	taskDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/task"
	"github.com/ankaahq/ankaa-access/internal/task"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(t *taskDatamodel.Task) error {
	return r.db.Create(t).Error
}

func (r *TaskRepository) GetByID(id int64) (*taskDatamodel.Task, error) {
	var t taskDatamodel.Task
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) List(limit, offset int) ([]*taskDatamodel.Task, error) {
	var tasks []*taskDatamodel.Task
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Count() (int, error) {
	var count int64
	err := r.db.Model(&taskDatamodel.Task{}).Count(&count).Error
	return int(count), err
}

func (r *TaskRepository) Update(t *taskDatamodel.Task) error {
	return r.db.Save(t).Error
}

func (r *TaskRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&taskDatamodel.Task{}).Error
}
