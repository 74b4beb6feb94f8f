package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypePurgeLoginAttempts = "auth:purge_login_attempts"

type PurgeLoginAttemptsPayload struct {
	OlderThanDays int `json:"older_than_days"`
}

func NewPurgeLoginAttemptsTask(olderThanDays int) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgeLoginAttemptsPayload{OlderThanDays: olderThanDays})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurgeLoginAttempts, payload), nil
}
