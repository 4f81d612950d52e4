package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project groups tasks and their recurring templates.
type Project struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Tasks     []Task `gorm:"foreignKey:ProjectID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
