package shared

import "time"

// BaseEntity provides common fields for all entities.
//
// Primary keys are store-assigned auto-increment integers rather than
// generated UUIDs: cost resolution breaks same-day ties by picking the
// highest id, which requires ids to reflect insertion order.
type BaseEntity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() int64 {
	return e.ID
}
