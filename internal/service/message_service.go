package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lembranca/memorial-backend/internal/common"
	"github.com/lembranca/memorial-backend/internal/domain"
	"github.com/lembranca/memorial-backend/internal/repository"
	pkglogger "github.com/lembranca/memorial-backend/pkg/logger"
	"gorm.io/gorm"
)

// MessageService business logic for the tribute wall and its moderation
// state machine (visible -> reported -> hidden, owner-controlled)
type MessageService interface {
	Add(memorialID int, authorID *int, req *domain.AddMessageRequest) (*domain.MemorialMessage, error)
	GetByMemorial(memorialID int, callerID *int) ([]*domain.MessageResponse, error)
	Report(id int) error
	Hide(id, memorialID, requesterID int) error
	Unhide(id, memorialID, requesterID int) error
	GetReported() ([]*domain.MessageResponse, error)
}

type messageService struct {
	repo         repository.MessageRepository
	memorialRepo repository.MemorialRepository
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	notifier     Notifier
}

// NewMessageService creates a new MessageService
func NewMessageService(
	repo repository.MessageRepository,
	memorialRepo repository.MemorialRepository,
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) MessageService {
	return &messageService{
		repo:         repo,
		memorialRepo: memorialRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// Add posts a message to a memorial wall. Authenticated authors are
// stored by id only; guests must supply a display name. New messages
// always start visible.
func (s *messageService) Add(memorialID int, authorID *int, req *domain.AddMessageRequest) (*domain.MemorialMessage, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: a mensagem não pode estar vazia", common.ErrInvalidInput)
	}

	if _, err := s.findProfile(memorialID); err != nil {
		return nil, err
	}

	msg := &domain.MemorialMessage{
		MemorialID: memorialID,
		Content:    req.Content,
	}

	if authorID != nil {
		msg.AuthorID = authorID
	} else {
		if strings.TrimSpace(req.AuthorName) == "" {
			return nil, fmt.Errorf("%w: visitantes devem informar um nome", common.ErrInvalidInput)
		}
		msg.AuthorName = req.AuthorName
	}

	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	// Best-effort feed entry
	err := s.activityRepo.Create(&domain.Activity{
		Type:       domain.ActivityMessagePosted,
		MemorialID: memorialID,
		UserID:     authorID,
	})
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Int("memorial_id", memorialID).Msg("activity write failed")
	}

	return msg, nil
}

// GetByMemorial returns the wall of a memorial, newest first. The profile
// owner sees every message including hidden ones; everyone else only the
// public rows.
func (s *messageService) GetByMemorial(memorialID int, callerID *int) ([]*domain.MessageResponse, error) {
	profile, err := s.findProfile(memorialID)
	if err != nil {
		return nil, err
	}

	includeHidden := callerID != nil && *callerID == profile.CreatorID

	messages, err := s.repo.FindByMemorial(memorialID, includeHidden)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Int("memorial_id", memorialID).Msg("message list failed")
		return []*domain.MessageResponse{}, nil
	}

	return s.toResponses(messages), nil
}

// Report flags a message for the owner's attention. Anyone may report,
// repeatedly; the operation is idempotent and never touches visibility.
func (s *messageService) Report(id int) error {
	if err := s.repo.MarkReported(id); err != nil {
		return err
	}

	go func() {
		err := s.notifier.Notify(context.Background(),
			"Mensagem Reportada para Moderação",
			"Uma mensagem foi reportada e requer moderação.")
		if err != nil {
			pkglogger.GetLogger().Warn().Err(err).Int("message_id", id).Msg("report notification failed")
		}
	}()

	return nil
}

// Hide removes a message from public view. Only the owner of the parent
// memorial may hide; the report flag is left as-is.
func (s *messageService) Hide(id, memorialID, requesterID int) error {
	if err := s.checkOwner(memorialID, requesterID); err != nil {
		return err
	}
	return s.repo.SetHidden(id)
}

// Unhide restores a message to public view and clears its report flag,
// returning it to the plain visible state.
func (s *messageService) Unhide(id, memorialID, requesterID int) error {
	if err := s.checkOwner(memorialID, requesterID); err != nil {
		return err
	}
	return s.repo.Unhide(id)
}

// GetReported returns every reported message, newest first, for the
// moderation view. Infrastructure failures degrade to an empty list.
func (s *messageService) GetReported() ([]*domain.MessageResponse, error) {
	messages, err := s.repo.FindReported()
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("reported message list failed")
		return []*domain.MessageResponse{}, nil
	}
	return s.toResponses(messages), nil
}

func (s *messageService) findProfile(memorialID int) (*domain.MemorialProfile, error) {
	profile, err := s.memorialRepo.FindByID(memorialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMemorialNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *messageService) checkOwner(memorialID, requesterID int) error {
	profile, err := s.findProfile(memorialID)
	if err != nil {
		return err
	}
	if profile.CreatorID != requesterID {
		return common.ErrForbidden
	}
	return nil
}

// toResponses builds read models, resolving display names of
// authenticated authors from the users table in one batch
func (s *messageService) toResponses(messages []*domain.MemorialMessage) []*domain.MessageResponse {
	idSet := map[int]struct{}{}
	for _, m := range messages {
		if m.AuthorID != nil && m.AuthorName == "" {
			idSet[*m.AuthorID] = struct{}{}
		}
	}

	names := map[int]string{}
	if len(idSet) > 0 {
		ids := make([]int, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		users, err := s.userRepo.FindByIDs(ids)
		if err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("author name lookup failed")
		}
		for _, u := range users {
			names[u.ID] = u.Name
		}
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		resp := m.ToResponse()
		if resp.AuthorName == "" && m.AuthorID != nil {
			resp.AuthorName = names[*m.AuthorID]
		}
		responses[i] = resp
	}
	return responses
}
