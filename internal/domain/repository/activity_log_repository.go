package repository

import "github.com/puntoventa/minimarket-api/internal/domain/entity"

// ActivityLogRepository puerto del log de auditoría.
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
}
