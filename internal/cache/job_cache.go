package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard-api/internal/config"
	"jobboard-api/internal/model"

	"github.com/redis/go-redis/v9"
)

const jobTTL = 5 * time.Minute

// JobCache is a read-through cache for single job views. Redis being down or
// unconfigured is never an error for callers; reads just miss.
type JobCache struct {
	client *redis.Client
}

// NewJobCache returns a disabled cache when REDIS_ADDR is not set or redis is
// unreachable.
func NewJobCache(ctx context.Context) *JobCache {
	cfg := config.LoadRedisConfig()
	if cfg.Addr == "" {
		return &JobCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Redis unavailable, job cache disabled: %v", err)
		_ = client.Close()
		return &JobCache{}
	}

	return &JobCache{client: client}
}

func (c *JobCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *JobCache) GetJob(ctx context.Context, id uint) (*model.Job, bool) {
	if !c.Enabled() {
		return nil, false
	}
	b, err := c.client.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("job cache get failed: %v", err)
		}
		return nil, false
	}
	var job model.Job
	if err := json.Unmarshal(b, &job); err != nil {
		return nil, false
	}
	return &job, true
}

func (c *JobCache) SetJob(ctx context.Context, job *model.Job) {
	if !c.Enabled() || job == nil {
		return
	}
	b, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, jobKey(job.ID), b, jobTTL).Err(); err != nil {
		log.Printf("job cache set failed: %v", err)
	}
}

func (c *JobCache) InvalidateJob(ctx context.Context, id uint) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Del(ctx, jobKey(id)).Err(); err != nil {
		log.Printf("job cache delete failed: %v", err)
	}
}

func jobKey(id uint) string {
	return fmt.Sprintf("jobs:view:%d", id)
}
