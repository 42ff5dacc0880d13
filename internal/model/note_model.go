package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Content   string     `gorm:"type:text"`
	FolderId  *uuid.UUID `gorm:"type:uuid;index"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}

// NoteTag is the membership row linking a note to a tag. Position records
// insertion order so the tag list renders stably.
type NoteTag struct {
	NoteId   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagId    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int       `gorm:"not null"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
