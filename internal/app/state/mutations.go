package state

import (
	"context"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/pkg/apperrors"
)

// AppendChatMessage adds msg to the end of the chat history.
func (s *AppState) AppendChatMessage(ctx context.Context, msg models.ChatMessage) error {
	msg = msg.Clone()
	return s.Mutate(ctx, models.KeyChatMessages, func(d *models.AppData) error {
		if d.ChatMessages.Index(msg.ID) >= 0 {
			return apperrors.NewConflictError("duplicate message id " + msg.ID)
		}
		d.ChatMessages = append(d.ChatMessages, msg)
		return nil
	})
}

// React increments the kind counter of message id. It returns the updated
// message and false when no message has that id.
func (s *AppState) React(ctx context.Context, id, kind string) (models.ChatMessage, bool, error) {
	var updated models.ChatMessage
	found := false
	err := s.Mutate(ctx, models.KeyChatMessages, func(d *models.AppData) error {
		i := d.ChatMessages.Index(id)
		if i < 0 {
			return ErrUnchanged
		}
		d.ChatMessages[i].Reactions[kind]++
		updated = d.ChatMessages[i].Clone()
		found = true
		return nil
	})
	if err != nil {
		return models.ChatMessage{}, false, err
	}
	return updated, found, nil
}

// AddListing appends a marketplace item.
func (s *AppState) AddListing(ctx context.Context, item models.MarketplaceItem) error {
	return s.Mutate(ctx, models.KeyMarketplaceItems, func(d *models.AppData) error {
		d.MarketplaceItems = append(d.MarketplaceItems, item)
		return nil
	})
}

// AddQuestion appends a Q&A post.
func (s *AppState) AddQuestion(ctx context.Context, post models.QnaPost) error {
	post = post.Clone()
	return s.Mutate(ctx, models.KeyQnaPosts, func(d *models.AppData) error {
		d.QnaPosts = append(d.QnaPosts, post)
		return nil
	})
}

// AddAnswer appends answer to question id and bumps its answer count.
func (s *AppState) AddAnswer(ctx context.Context, questionID string, answer models.Answer) error {
	return s.Mutate(ctx, models.KeyQnaPosts, func(d *models.AppData) error {
		i := d.QnaPosts.Index(questionID)
		if i < 0 {
			return apperrors.NewResourceNotFoundError("question " + questionID + " not found")
		}
		d.QnaPosts[i].Answers = append(d.QnaPosts[i].Answers, answer)
		d.QnaPosts[i].AnswerCount++
		return nil
	})
}

// Block adds userID to the blocked set. Blocking a blocked id is a no-op.
func (s *AppState) Block(ctx context.Context, userID string) error {
	return s.Mutate(ctx, models.KeyBlockedUsers, func(d *models.AppData) error {
		if d.BlockedUsers.Contains(userID) {
			return ErrUnchanged
		}
		d.BlockedUsers = d.BlockedUsers.With(userID)
		return nil
	})
}

// Unblock removes userID from the blocked set and reports whether it was
// there. Unblocking an id that is not blocked is a no-op.
func (s *AppState) Unblock(ctx context.Context, userID string) (bool, error) {
	removed := false
	err := s.Mutate(ctx, models.KeyBlockedUsers, func(d *models.AppData) error {
		if !d.BlockedUsers.Contains(userID) {
			return ErrUnchanged
		}
		d.BlockedUsers = d.BlockedUsers.Without(userID)
		removed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
