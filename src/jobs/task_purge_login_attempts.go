package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-SecAssess/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
)

// HandlePurgeLoginAttempts deletes login audit records older than the
// configured window. The rest of the data set is append-only or
// admin-managed; this is the one collection that grows unbounded.
func (h *Handler) HandlePurgeLoginAttempts(ctx context.Context, t *asynq.Task) error {
	var payload PurgeLoginAttemptsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	days := payload.OlderThanDays
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	res, err := h.db.Collection(database.ColLoginAttempts).
		DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		log.Println("❌ Failed to purge login attempts:", err)
		return err
	}

	log.Printf("🧹 Purged %d login attempts older than %d days", res.DeletedCount, days)
	return nil
}
