package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"hajz/models"
)

const TypeAvailabilityRefresh = "availability:refresh"

// NewAvailabilityRefreshTask builds the task that invalidates a cached
// availability snapshot.
func NewAvailabilityRefreshTask(payload models.AvailabilityRefreshPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAvailabilityRefresh, b), nil
}

// RefreshEnqueuer enqueues availability refresh tasks. It implements the
// booking service's RefreshNotifier.
type RefreshEnqueuer struct {
	Client *asynq.Client
}

// NotifyBooked enqueues an invalidation for the doctor+date snapshot.
func (e *RefreshEnqueuer) NotifyBooked(doctorID, date string) error {
	task, err := NewAvailabilityRefreshTask(models.AvailabilityRefreshPayload{
		DoctorID: doctorID,
		Date:     date,
	})
	if err != nil {
		return err
	}
	_, err = e.Client.Enqueue(task)
	return err
}
