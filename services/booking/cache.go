package booking

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"slotbook/config"
	"slotbook/models"
	"slotbook/utils"
)

const openSlotsKeyPrefix = "openslots:"

func openSlotsKey(hostID, date string) string {
	return openSlotsKeyPrefix + hostID + ":" + date
}

// cachedOpenSlots returns the cached open-slot list for a host/date.
// Any cache failure is treated as a miss; the store stays authoritative.
func (s *DefaultScheduleService) cachedOpenSlots(ctx context.Context, hostID, date string) ([]models.TimeSlot, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, openSlotsKey(hostID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.TimeSlot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultScheduleService) storeOpenSlots(ctx context.Context, hostID, date string, slots []models.TimeSlot) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.ScheduleCacheTTL) * time.Second
	if err := s.Cache.Set(ctx, openSlotsKey(hostID, date), data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache open slots", zap.Error(err))
	}
}

// invalidateOpenSlots drops the cached list after any write touching the
// host/date, so clients never see a slot the ledger already consumed for
// longer than a single read.
func (s *DefaultScheduleService) invalidateOpenSlots(ctx context.Context, hostID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, openSlotsKey(hostID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate open slots cache", zap.Error(err))
	}
}
