package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type eventDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _events eventDeps

func InitEventDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_events = eventDeps{db: db, rt: rt, ps: ps}
}

// EmitEvent records a gamification event and fans it out to connected
// websockets and registered push devices. Safe to call anywhere.
func EmitEvent(userID uint, kind, title, message string, data map[string]string) {
	if _events.db == nil {
		return // not initialized (tests)
	}
	n := &models.Notification{UserID: userID, Kind: kind, Title: title, Message: message, CreatedAt: time.Now()}
	_ = _events.db.Create(n).Error

	if _events.rt != nil {
		_events.rt.Broadcast(userID, map[string]any{
			"kind":  kind,
			"event": n,
			"data":  data,
		})
	}
	if _events.ps != nil {
		_events.ps.PushToUser(userID, title, message, data)
	}
}
