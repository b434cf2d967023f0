package use_cases

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/queue"
	worker_task "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/tasks"

	"github.com/stretchr/testify/mock"
)

var _ queue.TaskQueueClient = (*MockTaskQueue)(nil)

// Mock TaskQueue for testing
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueContentPublished(payload *worker_task.ContentPublishedPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
