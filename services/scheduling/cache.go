package scheduling

import (
	"context"
	"encoding/json"
	"fmt"

	"occlusa/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Availability caching is best effort: a cache failure is logged and the
// request falls through to the store.

func availabilityKey(providerName, dateKey string) string {
	return fmt.Sprintf("availability:%s:%s", providerName, dateKey)
}

func (s *DefaultSchedulingService) cachedAvailability(ctx context.Context, providerName, dateKey string) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, availabilityKey(providerName, dateKey)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("availability cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultSchedulingService) storeAvailability(ctx context.Context, providerName, dateKey string, slots []string) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, availabilityKey(providerName, dateKey), data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.Error(err))
	}
}

func (s *DefaultSchedulingService) invalidateAvailability(ctx context.Context, providerName, dateKey string) {
	if s.Cache == nil || providerName == "" || dateKey == "" {
		return
	}
	if err := s.Cache.Del(ctx, availabilityKey(providerName, dateKey)).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
	}
}
