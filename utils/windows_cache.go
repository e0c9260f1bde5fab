package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amamamou/we4lead-sub000/booking"
	"github.com/amamamou/we4lead-sub000/redis"
)

const windowsCacheTTL = 5 * time.Minute

func windowsCacheKey(counselorID uint) string {
	return fmt.Sprintf("windows:%d", counselorID)
}

// GetCachedWindows returns the counselor's cached weekly windows, if any.
func GetCachedWindows(counselorID uint) (booking.WeeklyWindows, bool) {
	if redis.Client == nil {
		return nil, false
	}

	raw, err := redis.Client.Get(redis.Ctx, windowsCacheKey(counselorID)).Result()
	if err != nil {
		return nil, false
	}

	var windows booking.WeeklyWindows
	if err := json.Unmarshal([]byte(raw), &windows); err != nil {
		return nil, false
	}
	return windows, true
}

// CacheWindows stores the counselor's weekly windows with a short TTL.
func CacheWindows(counselorID uint, windows booking.WeeklyWindows) {
	if redis.Client == nil {
		return
	}

	raw, err := json.Marshal(windows)
	if err != nil {
		return
	}
	redis.Client.Set(redis.Ctx, windowsCacheKey(counselorID), raw, windowsCacheTTL)
}

// InvalidateWindows drops the cached windows after an availability write.
func InvalidateWindows(counselorID uint) {
	if redis.Client == nil {
		return
	}
	redis.Client.Del(redis.Ctx, windowsCacheKey(counselorID))
}
