package repository

import (
	"github.com/lembranca/memorial-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository memorial message data access interface
type MessageRepository interface {
	Create(msg *domain.MemorialMessage) error
	FindByID(id int) (*domain.MemorialMessage, error)
	FindByMemorial(memorialID int, includeHidden bool) ([]*domain.MemorialMessage, error)
	FindReported() ([]*domain.MemorialMessage, error)
	MarkReported(id int) error
	SetHidden(id int) error
	Unhide(id int) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new message row
func (r *messageRepository) Create(msg *domain.MemorialMessage) error {
	return r.db.Create(msg).Error
}

// FindByID finds a message by ID
func (r *messageRepository) FindByID(id int) (*domain.MemorialMessage, error) {
	var msg domain.MemorialMessage
	if err := r.db.Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindByMemorial returns the wall messages of a memorial, newest first.
// Hidden rows are excluded unless includeHidden is set (owner reads).
func (r *messageRepository) FindByMemorial(memorialID int, includeHidden bool) ([]*domain.MemorialMessage, error) {
	var messages []*domain.MemorialMessage
	q := r.db.Where("memorial_id = ?", memorialID)
	if !includeHidden {
		q = q.Where("is_hidden = ?", false)
	}
	err := q.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// FindReported returns all reported messages, newest first
func (r *messageRepository) FindReported() ([]*domain.MemorialMessage, error) {
	var messages []*domain.MemorialMessage
	err := r.db.Where("is_reported = ?", true).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

// MarkReported raises the report flag. Idempotent; the hidden flag is
// never touched here.
func (r *messageRepository) MarkReported(id int) error {
	return r.db.Model(&domain.MemorialMessage{}).
		Where("id = ?", id).
		UpdateColumn("is_reported", true).Error
}

// SetHidden removes a message from public view, whatever its report state
func (r *messageRepository) SetHidden(id int) error {
	return r.db.Model(&domain.MemorialMessage{}).
		Where("id = ?", id).
		UpdateColumn("is_hidden", true).Error
}

// Unhide restores a message to public view and clears its report flag
func (r *messageRepository) Unhide(id int) error {
	return r.db.Model(&domain.MemorialMessage{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"is_hidden":   false,
			"is_reported": false,
		}).Error
}
