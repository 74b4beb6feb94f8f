package jobs

import (
	"log"
	"os"

	"Backend-SecAssess/src/database"

	"github.com/hibiken/asynq"
)

// Handler carries the dependencies task handlers need.
type Handler struct {
	db *database.Mongo
}

func NewHandler(db *database.Mongo) *Handler {
	return &Handler{db: db}
}

// StartWorker runs the asynq server and the periodic schedule. Blocks;
// run it in its own goroutine. No-op when Redis is not configured.
func StartWorker(db *database.Mongo) {
	redisURI := os.Getenv("REDIS_URI")
	if redisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	redisOpt := asynq.RedisClientOpt{Addr: redisURI, Password: os.Getenv("REDIS_PASSWORD")}
	handler := NewHandler(db)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePurgeLoginAttempts, handler.HandlePurgeLoginAttempts)

	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 2})

	scheduler := asynq.NewScheduler(redisOpt, nil)
	task, err := NewPurgeLoginAttemptsTask(30)
	if err != nil {
		log.Println("❌ Failed to build purge task:", err)
		return
	}
	if _, err := scheduler.Register("@every 24h", task); err != nil {
		log.Println("❌ Failed to register purge schedule:", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Scheduler stopped:", err)
		}
	}()

	log.Println("✅ Background worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Worker stopped:", err)
	}
}
