package counselor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	counselorRepo "mindcare/database/repository/counselor"
	"mindcare/models"
	"mindcare/utils"

	"go.uber.org/zap"
)

const (
	listCacheKey = "counselors:active"
	listCacheTTL = 5 * time.Minute
)

// List returns active counselors matching the filter, newest first. The
// unfiltered listing is served from the Redis cache when possible.
func (s *DefaultCounselorService) List(filter counselorRepo.ListFilter) ([]models.Counselor, error) {
	logger := utils.GetLogger()
	cacheable := s.Cache != nil && filter == counselorRepo.ListFilter{}
	ctx := context.Background()

	if cacheable {
		if cached, err := s.Cache.Get(ctx, listCacheKey).Result(); err == nil {
			var counselors []models.Counselor
			if decodeErr := json.Unmarshal([]byte(cached), &counselors); decodeErr == nil {
				return counselors, nil
			} else {
				logger.Warn("List: dropping unreadable counselor cache entry", zap.Error(decodeErr))
			}
		}
	}

	counselors, err := s.Repo.List(filter)
	if err != nil {
		logger.Error("List failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list counselors: %w", err)
	}

	if cacheable {
		if data, err := json.Marshal(counselors); err == nil {
			if err := s.Cache.Set(ctx, listCacheKey, data, listCacheTTL).Err(); err != nil {
				logger.Warn("List: failed to cache counselor listing", zap.Error(err))
			}
		}
	}
	return counselors, nil
}

func (s *DefaultCounselorService) invalidateListCache() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), listCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate counselor cache", zap.Error(err))
	}
}
