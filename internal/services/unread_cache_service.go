package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zeroonedevs/SheRisesv1/configs"
)

// UnreadCacheService is a read-through cache for the unread badge. It is
// never written ahead of the store: mutations only invalidate, and the next
// read repopulates from the authoritative count.
type UnreadCacheService struct {
	redis *redis.Client
	ctx   context.Context
	ttl   time.Duration
}

func NewUnreadCacheService(redisClient *redis.Client, ctx context.Context, config *configs.Config) *UnreadCacheService {
	ttl := time.Duration(config.Viper.GetInt("redis.unread_ttl_seconds")) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &UnreadCacheService{
		redis: redisClient,
		ctx:   ctx,
		ttl:   ttl,
	}
}

func (ucs *UnreadCacheService) key(userID uint) string {
	return fmt.Sprintf("unread_count:%d", userID)
}

func (ucs *UnreadCacheService) Get(userID uint) (int64, bool) {
	count, err := ucs.redis.Get(ucs.ctx, ucs.key(userID)).Int64()
	if err != nil {
		if err != redis.Nil {
			log.Println("Unread cache get failed:", err)
		}
		return 0, false
	}
	return count, true
}

func (ucs *UnreadCacheService) Set(userID uint, count int64) {
	if err := ucs.redis.Set(ucs.ctx, ucs.key(userID), count, ucs.ttl).Err(); err != nil {
		log.Println("Unread cache set failed:", err)
	}
}

func (ucs *UnreadCacheService) Invalidate(userID uint) {
	if err := ucs.redis.Del(ucs.ctx, ucs.key(userID)).Err(); err != nil {
		log.Println("Unread cache invalidate failed:", err)
	}
}
