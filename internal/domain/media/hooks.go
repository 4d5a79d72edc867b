package media

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
