package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// HitCounterRepository 负责问题点击计数。
// 计数是易失的运营数据，保存在 Redis 中而不是问题行里，
// 这样搜索与查询路径对 MySQL 保持纯只读。
type HitCounterRepository interface {
	Increment(ctx context.Context, questionID uint) (int64, error)
	Get(ctx context.Context, questionID uint) (int64, error)
	GetBatch(ctx context.Context, questionIDs []uint) (map[uint]int64, error)
}

type hitCounterRepository struct {
	redisClient *redis.Client
}

// NewHitCounterRepository 创建一个新的 HitCounterRepository 实例。
func NewHitCounterRepository(redisClient *redis.Client) HitCounterRepository {
	return &hitCounterRepository{redisClient: redisClient}
}

// getHitKey 生成某个问题点击计数的 redis key。
func getHitKey(questionID uint) string {
	return fmt.Sprintf("question:hits:%d", questionID)
}

// Increment 将问题的点击计数加一并返回新值。
func (r *hitCounterRepository) Increment(ctx context.Context, questionID uint) (int64, error) {
	return r.redisClient.Incr(ctx, getHitKey(questionID)).Result()
}

// Get 读取单个问题的点击计数，从未被点击过的问题返回 0。
func (r *hitCounterRepository) Get(ctx context.Context, questionID uint) (int64, error) {
	val, err := r.redisClient.Get(ctx, getHitKey(questionID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

// GetBatch 批量读取点击计数，缺失的 key 计为 0。
func (r *hitCounterRepository) GetBatch(ctx context.Context, questionIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(questionIDs))
	if len(questionIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, 0, len(questionIDs))
	for _, id := range questionIDs {
		keys = append(keys, getHitKey(id))
	}

	vals, err := r.redisClient.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range vals {
		if v == nil {
			counts[questionIDs[i]] = 0
			continue
		}
		s, ok := v.(string)
		if !ok {
			counts[questionIDs[i]] = 0
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			counts[questionIDs[i]] = 0
			continue
		}
		counts[questionIDs[i]] = n
	}
	return counts, nil
}
