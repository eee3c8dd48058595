package service

import "time"

// SetClock подменяет часы сервиса в тестах внешнего пакета
func SetClock(s any, now func() time.Time) {
	switch svc := s.(type) {
	case *checkInService:
		svc.now = now
	case *proximityService:
		svc.now = now
	}
}
