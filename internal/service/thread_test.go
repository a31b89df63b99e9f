package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coding-gurus/forum/internal/apperr"
	"github.com/coding-gurus/forum/internal/domain"
)

// --- Mocks ---

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	createThreadFunc func(creationData domain.ThreadCreationData) (domain.Thread, error)
	allThreadsFunc   func() ([]domain.ThreadMetadata, error)
	getThreadFunc    func(id domain.ThreadId) (domain.Thread, error)
	updateThreadFunc func(id domain.ThreadId, updateData domain.ThreadUpdateData) error
	deleteThreadFunc func(id domain.ThreadId) error

	createCalled bool
	deleteCalled bool
	deleteIdArg  domain.ThreadId
}

func (m *MockThreadStorage) CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error) {
	m.createCalled = true
	if m.createThreadFunc != nil {
		return m.createThreadFunc(creationData)
	}
	now := time.Now().UTC()
	return domain.Thread{ThreadMetadata: domain.ThreadMetadata{
		Id: 1, Title: creationData.Title, Content: creationData.Content,
		CreatedAt: now, LastEditedAt: now, LastActivity: now,
	}}, nil
}

func (m *MockThreadStorage) AllThreads() ([]domain.ThreadMetadata, error) {
	if m.allThreadsFunc != nil {
		return m.allThreadsFunc()
	}
	return nil, nil
}

func (m *MockThreadStorage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return domain.Thread{ThreadMetadata: domain.ThreadMetadata{Id: id}}, nil
}

func (m *MockThreadStorage) UpdateThread(id domain.ThreadId, updateData domain.ThreadUpdateData) error {
	if m.updateThreadFunc != nil {
		return m.updateThreadFunc(id, updateData)
	}
	return nil
}

func (m *MockThreadStorage) DeleteThread(id domain.ThreadId) error {
	m.deleteCalled = true
	m.deleteIdArg = id
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(id)
	}
	return nil
}

// MockThreadValidator mocks the ThreadValidator interface.
type MockThreadValidator struct {
	payloadFunc func(title domain.ThreadTitle, content domain.Text) error
}

func (m *MockThreadValidator) Payload(title domain.ThreadTitle, content domain.Text) error {
	if m.payloadFunc != nil {
		return m.payloadFunc(title, content)
	}
	return nil
}

// --- Tests ---

func TestThreadCreate(t *testing.T) {
	validData := domain.ThreadCreationData{Title: "Hello", Content: "World"}

	t.Run("successful creation", func(t *testing.T) {
		storage := &MockThreadStorage{}
		validator := &MockThreadValidator{}
		validator.payloadFunc = func(title domain.ThreadTitle, content domain.Text) error {
			assert.Equal(t, "Hello", title)
			assert.Equal(t, "World", content)
			return nil
		}
		svc := NewThread(storage, validator)

		thread, err := svc.Create(validData)

		require.NoError(t, err)
		assert.True(t, storage.createCalled)
		assert.Equal(t, "Hello", thread.Title)
		assert.Equal(t, thread.CreatedAt, thread.LastEditedAt)
		assert.Equal(t, thread.CreatedAt, thread.LastActivity)
	})

	t.Run("validation failure blocks persistence", func(t *testing.T) {
		storage := &MockThreadStorage{}
		validator := &MockThreadValidator{
			payloadFunc: func(domain.ThreadTitle, domain.Text) error {
				return apperr.BadRequest(`"thread.title" is not allowed to be empty`)
			},
		}
		svc := NewThread(storage, validator)

		_, err := svc.Create(domain.ThreadCreationData{Content: "World"})

		require.Error(t, err)
		assert.Equal(t, 400, apperr.StatusCode(err))
		assert.False(t, storage.createCalled, "storage must not be touched on invalid payload")
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		storage := &MockThreadStorage{
			createThreadFunc: func(domain.ThreadCreationData) (domain.Thread, error) {
				return domain.Thread{}, errors.New("insert failed")
			},
		}
		svc := NewThread(storage, &MockThreadValidator{})

		_, err := svc.Create(validData)
		require.Error(t, err)
		assert.Equal(t, 500, apperr.StatusCode(err))
	})
}

func TestThreadList(t *testing.T) {
	storage := &MockThreadStorage{
		allThreadsFunc: func() ([]domain.ThreadMetadata, error) {
			return []domain.ThreadMetadata{{Id: 2}, {Id: 1}}, nil
		},
	}
	svc := NewThread(storage, &MockThreadValidator{})

	threads, err := svc.List()
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, int64(2), threads[0].Id)
}

func TestThreadUpdate(t *testing.T) {
	t.Run("validates before updating", func(t *testing.T) {
		updateCalled := false
		storage := &MockThreadStorage{
			updateThreadFunc: func(domain.ThreadId, domain.ThreadUpdateData) error {
				updateCalled = true
				return nil
			},
		}
		validator := &MockThreadValidator{
			payloadFunc: func(domain.ThreadTitle, domain.Text) error {
				return apperr.BadRequest("invalid")
			},
		}
		svc := NewThread(storage, validator)

		err := svc.Update(1, domain.ThreadUpdateData{})
		require.Error(t, err)
		assert.False(t, updateCalled)
	})

	t.Run("missing thread surfaces 404", func(t *testing.T) {
		storage := &MockThreadStorage{
			updateThreadFunc: func(domain.ThreadId, domain.ThreadUpdateData) error {
				return apperr.NotFound("Thread not found")
			},
		}
		svc := NewThread(storage, &MockThreadValidator{})

		err := svc.Update(424242, domain.ThreadUpdateData{Title: "t", Content: "c"})
		assert.Equal(t, 404, apperr.StatusCode(err))
	})
}

func TestThreadDelete(t *testing.T) {
	storage := &MockThreadStorage{}
	svc := NewThread(storage, &MockThreadValidator{})

	require.NoError(t, svc.Delete(7))
	assert.True(t, storage.deleteCalled)
	assert.Equal(t, int64(7), storage.deleteIdArg)
}
