package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fadilmartias/talent-sourcer/internal/model"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db}
}

// SaveOutreachMessage appends a new message row. Messages are regenerable,
// so each save gets a fresh id rather than upserting.
func (r *MessageRepository) SaveOutreachMessage(message *model.OutreachMessage, jobID string) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.JobID = jobID
	return r.db.Create(message).Error
}

func (r *MessageRepository) CountByJob(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.OutreachMessage{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}
