package models

import "time"

// LoginAttempt audit record of one login try. Purged periodically by
// the jobs worker.
type LoginAttempt struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	IP        string    `bson:"ip" json:"ip"`
	Success   bool      `bson:"success" json:"success"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
