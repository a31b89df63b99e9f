package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/coding-gurus/forum/internal/apperr"
	"github.com/coding-gurus/forum/internal/domain"
)

// CreateReply inserts the reply, appends its id to the parent thread's
// reference list and bumps the thread's last activity, all in one
// transaction.
func (s *Storage) CreateReply(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.Reply, error) {
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var reply domain.Reply
	err = tx.QueryRow(`
        INSERT INTO replies (content, created_at, last_edited_at)
        VALUES ($1, $2, $2)
        RETURNING id
    `, creationData.Content, now).Scan(&reply.Id)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to insert reply: %w", err)
	}

	result, err := tx.Exec(`
        UPDATE threads
        SET reply_ids = array_append(reply_ids, $2), last_activity_at = $3
        WHERE id = $1
    `, threadId, reply.Id, now)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to attach reply to thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.Reply{}, apperr.NotFound("Thread not found")
	}

	if err := tx.Commit(); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	reply.Content = creationData.Content
	reply.CreatedAt = now
	reply.LastEditedAt = now
	return reply, nil
}

func (s *Storage) GetReply(id domain.ReplyId) (domain.Reply, error) {
	var reply domain.Reply
	err := s.db.QueryRow(`
        SELECT id, content, created_at, last_edited_at
        FROM replies
        WHERE id = $1
    `, id).Scan(&reply.Id, &reply.Content, &reply.CreatedAt, &reply.LastEditedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, apperr.NotFound("Reply not found")
		}
		return domain.Reply{}, fmt.Errorf("failed to fetch reply: %w", err)
	}
	return reply, nil
}

// UpdateReply edits a reply in place. The parent's reference list is
// untouched, so reply order is preserved across edits; the update only
// applies when the thread actually references the reply.
func (s *Storage) UpdateReply(threadId domain.ThreadId, replyId domain.ReplyId, updateData domain.ReplyUpdateData) error {
	now := time.Now().UTC()
	result, err := s.db.Exec(`
        UPDATE replies
        SET content = $3, last_edited_at = $4
        WHERE id = $2
          AND EXISTS (
              SELECT 1 FROM threads WHERE id = $1 AND reply_ids @> ARRAY[$2]::BIGINT[]
          )
    `, threadId, replyId, updateData.Content, now)
	if err != nil {
		return fmt.Errorf("failed to update reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperr.NotFound("Reply not found")
	}
	return nil
}

// DeleteReply pulls the reference from the parent's list and deletes
// the reply record in one transaction.
func (s *Storage) DeleteReply(threadId domain.ThreadId, replyId domain.ReplyId) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
        UPDATE threads
        SET reply_ids = array_remove(reply_ids, $2)
        WHERE id = $1
    `, threadId, replyId)
	if err != nil {
		return fmt.Errorf("failed to detach reply from thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperr.NotFound("Thread not found")
	}

	result, err = tx.Exec("DELETE FROM replies WHERE id = $1", replyId)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperr.NotFound("Reply not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
