package redisqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/ports/secondary"
	"gitlab.com/codecapsules.net/internal/domain"
)

const (
	queueKeyPrefix  = "exec:queue:"
	resultKeyPrefix = "exec:result:"

	// Results linger briefly so a slow poller can still pick them up;
	// after that the job is considered abandoned.
	resultExpiration = 10 * time.Minute

	defaultPollInterval = 250 * time.Millisecond
)

var _ secondary.JobQueue = (*RedisJobQueue)(nil)

// RedisJobQueue implements the JobQueue interface with Redis: jobs are
// pushed onto a per-language list and results are read from a per-job key
// written by the worker side.
type RedisJobQueue struct {
	client       *redis.Client
	pollInterval time.Duration
	logger       primary.Logger
}

// NewRedisJobQueue creates a new Redis job queue.
func NewRedisJobQueue(client *redis.Client, logger primary.Logger) *RedisJobQueue {
	return &RedisJobQueue{
		client:       client,
		pollInterval: defaultPollInterval,
		logger:       logger,
	}
}

// Enqueue pushes the job onto its language queue and returns the
// correlation ID the result will be keyed under.
func (q *RedisJobQueue) Enqueue(ctx context.Context, job *domain.ExecutionJob) (string, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	encoded, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job: %w", err)
	}

	queueKey := queueKeyPrefix + job.Language
	if err := q.client.LPush(ctx, queueKey, encoded).Err(); err != nil {
		return "", fmt.Errorf("failed to enqueue job: %w", err)
	}

	q.logger.Debug("Job enqueued", "jobId", job.ID, "queue", queueKey)
	return job.ID.String(), nil
}

// AwaitResult polls the job's result key until it appears or the wait bound
// elapses.
func (q *RedisJobQueue) AwaitResult(ctx context.Context, jobID string, wait time.Duration) (*domain.ExecutionResult, error) {
	deadline := time.Now().Add(wait)
	resultKey := resultKeyPrefix + jobID

	ticker := time.NewTicker(q.pollInterval)
	defer ticker.Stop()

	for {
		encoded, err := q.client.Get(ctx, resultKey).Bytes()
		if err == nil {
			var result domain.ExecutionResult
			if err := json.Unmarshal(encoded, &result); err != nil {
				return nil, fmt.Errorf("failed to unmarshal job result: %w", err)
			}
			q.client.Del(ctx, resultKey)
			return &result, nil
		}
		if err != redis.Nil {
			return nil, fmt.Errorf("failed to poll job result: %w", err)
		}

		if time.Now().After(deadline) {
			return nil, secondary.ErrAwaitTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// PublishResult writes a job's result under its correlation key. This is the
// worker side of the queue contract.
func (q *RedisJobQueue) PublishResult(ctx context.Context, jobID string, result *domain.ExecutionResult) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal job result: %w", err)
	}
	if err := q.client.Set(ctx, resultKeyPrefix+jobID, encoded, resultExpiration).Err(); err != nil {
		return fmt.Errorf("failed to publish job result: %w", err)
	}
	return nil
}
