package media

import "time"

type Image struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	URL         string `gorm:"not null" json:"url"`
	StoragePath string `gorm:"not null" json:"-"`
	ByteSize    int64  `gorm:"not null" json:"byte_size"`
	MimeType    string `gorm:"type:varchar(100);not null" json:"mime_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
