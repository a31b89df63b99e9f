package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/coding-gurus/forum/internal/apperr"
	"github.com/coding-gurus/forum/internal/domain"
)

func (s *Storage) CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error) {
	// A fresh thread has all three timestamps equal: creation, last
	// edit and last activity all stamp the submission moment.
	now := time.Now().UTC()

	var thread domain.Thread
	err := s.db.QueryRow(`
        INSERT INTO threads (title, content, created_at, last_edited_at, last_activity_at)
        VALUES ($1, $2, $3, $3, $3)
        RETURNING id
    `, creationData.Title, creationData.Content, now).Scan(&thread.Id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	thread.Title = creationData.Title
	thread.Content = creationData.Content
	thread.CreatedAt = now
	thread.LastEditedAt = now
	thread.LastActivity = now
	return thread, nil
}

// AllThreads returns every thread's metadata ordered by last activity,
// most recently active first. Id breaks ties deterministically.
func (s *Storage) AllThreads() ([]domain.ThreadMetadata, error) {
	rows, err := s.db.Query(`
        SELECT id, title, content, created_at, last_edited_at, last_activity_at, cardinality(reply_ids)
        FROM threads
        ORDER BY last_activity_at DESC, id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.ThreadMetadata
	for rows.Next() {
		var t domain.ThreadMetadata
		if err := rows.Scan(
			&t.Id, &t.Title, &t.Content,
			&t.CreatedAt, &t.LastEditedAt, &t.LastActivity, &t.NumReplies,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

// GetThread fetches one thread and resolves its reply reference list
// into full reply records, preserving the list's order.
func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT id, title, content, created_at, last_edited_at, last_activity_at, reply_ids
        FROM threads
        WHERE id = $1
    `, id).Scan(
		&thread.Id, &thread.Title, &thread.Content,
		&thread.CreatedAt, &thread.LastEditedAt, &thread.LastActivity,
		&thread.ReplyIds,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, apperr.NotFound("Thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	thread.NumReplies = len(thread.ReplyIds)

	if len(thread.ReplyIds) == 0 {
		return thread, nil
	}

	rows, err := s.db.Query(`
        SELECT id, content, created_at, last_edited_at
        FROM replies
        WHERE id = ANY($1)
    `, thread.ReplyIds)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	byId := make(map[domain.ReplyId]*domain.Reply, len(thread.ReplyIds))
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(&reply.Id, &reply.Content, &reply.CreatedAt, &reply.LastEditedAt); err != nil {
			return domain.Thread{}, fmt.Errorf("failed to scan reply: %w", err)
		}
		byId[reply.Id] = &reply
	}
	if err = rows.Err(); err != nil {
		return domain.Thread{}, fmt.Errorf("rows iteration error: %w", err)
	}

	// Order by position in the reference list. A dangling reference
	// (reply row already gone) is skipped rather than failing the read.
	thread.Replies = make([]*domain.Reply, 0, len(thread.ReplyIds))
	for _, replyId := range thread.ReplyIds {
		if reply, ok := byId[replyId]; ok {
			thread.Replies = append(thread.Replies, reply)
		}
	}
	return thread, nil
}

func (s *Storage) UpdateThread(id domain.ThreadId, updateData domain.ThreadUpdateData) error {
	now := time.Now().UTC()
	result, err := s.db.Exec(`
        UPDATE threads
        SET title = $2, content = $3, last_edited_at = $4
        WHERE id = $1
    `, id, updateData.Title, updateData.Content, now)
	if err != nil {
		return fmt.Errorf("failed to update thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperr.NotFound("Thread not found")
	}
	return nil
}

// DeleteThread removes the thread and cascades to every reply it
// references. Both happen in one transaction so a crash cannot leave
// orphaned replies behind.
func (s *Storage) DeleteThread(id domain.ThreadId) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var replyIds pq.Int64Array
	err = tx.QueryRow(
		"DELETE FROM threads WHERE id = $1 RETURNING reply_ids",
		id,
	).Scan(&replyIds)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Thread not found")
		}
		return fmt.Errorf("failed to delete thread: %w", err)
	}

	if len(replyIds) > 0 {
		if _, err = tx.Exec("DELETE FROM replies WHERE id = ANY($1)", replyIds); err != nil {
			return fmt.Errorf("failed to cascade delete replies: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
