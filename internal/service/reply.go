package service

import (
	"github.com/coding-gurus/forum/internal/domain"
)

type ReplyService interface {
	Create(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.Reply, error)
	Get(id domain.ReplyId) (domain.Reply, error)
	Update(threadId domain.ThreadId, replyId domain.ReplyId, updateData domain.ReplyUpdateData) error
	Delete(threadId domain.ThreadId, replyId domain.ReplyId) error
}

type Reply struct {
	storage   ReplyStorage
	validator ReplyValidator
}

type ReplyStorage interface {
	CreateReply(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.Reply, error)
	GetReply(id domain.ReplyId) (domain.Reply, error)
	UpdateReply(threadId domain.ThreadId, replyId domain.ReplyId, updateData domain.ReplyUpdateData) error
	DeleteReply(threadId domain.ThreadId, replyId domain.ReplyId) error
}

type ReplyValidator interface {
	Payload(content domain.Text) error
}

func NewReply(storage ReplyStorage, validator ReplyValidator) *Reply {
	return &Reply{storage, validator}
}

func (r *Reply) Create(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.Reply, error) {
	if err := r.validator.Payload(creationData.Content); err != nil {
		return domain.Reply{}, err
	}
	return r.storage.CreateReply(threadId, creationData)
}

func (r *Reply) Get(id domain.ReplyId) (domain.Reply, error) {
	return r.storage.GetReply(id)
}

func (r *Reply) Update(threadId domain.ThreadId, replyId domain.ReplyId, updateData domain.ReplyUpdateData) error {
	if err := r.validator.Payload(updateData.Content); err != nil {
		return err
	}
	return r.storage.UpdateReply(threadId, replyId, updateData)
}

func (r *Reply) Delete(threadId domain.ThreadId, replyId domain.ReplyId) error {
	return r.storage.DeleteReply(threadId, replyId)
}
