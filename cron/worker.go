package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"hajz/config"
	"hajz/models"
	"hajz/services/tasks"
	"hajz/utils"
)

// InitRefreshWorker runs the availability refresh worker in background. It
// consumes the tasks enqueued after each accepted reservation and drops the
// matching cached availability snapshot, so every later read recomputes the
// free/taken partition from the store.
func InitRefreshWorker(cache *redis.Client) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAvailabilityRefresh, handleRefreshTask(cache))

	// Start async worker with retry logic
	go func() {
		log.Println("[RefreshWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RefreshWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RefreshWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRefreshTask(cache *redis.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AvailabilityRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RefreshWorker] invalid payload: %v", err)
			return err
		}

		if err := cache.Del(ctx, utils.AvailabilityKey(p.DoctorID, p.Date)).Err(); err != nil {
			log.Printf("[RefreshWorker] failed to drop snapshot for %s/%s: %v", p.DoctorID, p.Date, err)
			return err
		}
		return nil
	}
}
