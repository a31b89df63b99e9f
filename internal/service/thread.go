package service

import (
	"github.com/coding-gurus/forum/internal/domain"
)

type ThreadService interface {
	List() ([]domain.ThreadMetadata, error)
	Create(creationData domain.ThreadCreationData) (domain.Thread, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	Update(id domain.ThreadId, updateData domain.ThreadUpdateData) error
	Delete(id domain.ThreadId) error
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
}

type ThreadStorage interface {
	CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error)
	AllThreads() ([]domain.ThreadMetadata, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	UpdateThread(id domain.ThreadId, updateData domain.ThreadUpdateData) error
	DeleteThread(id domain.ThreadId) error
}

type ThreadValidator interface {
	Payload(title domain.ThreadTitle, content domain.Text) error
}

func NewThread(storage ThreadStorage, validator ThreadValidator) *Thread {
	return &Thread{storage, validator}
}

// List returns all threads sorted by last activity, newest first.
func (t *Thread) List() ([]domain.ThreadMetadata, error) {
	return t.storage.AllThreads()
}

func (t *Thread) Create(creationData domain.ThreadCreationData) (domain.Thread, error) {
	if err := t.validator.Payload(creationData.Title, creationData.Content); err != nil {
		return domain.Thread{}, err
	}
	return t.storage.CreateThread(creationData)
}

func (t *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	return t.storage.GetThread(id)
}

func (t *Thread) Update(id domain.ThreadId, updateData domain.ThreadUpdateData) error {
	if err := t.validator.Payload(updateData.Title, updateData.Content); err != nil {
		return err
	}
	return t.storage.UpdateThread(id, updateData)
}

// Delete removes the thread and, through the storage cascade, every
// reply it owns.
func (t *Thread) Delete(id domain.ThreadId) error {
	return t.storage.DeleteThread(id)
}
