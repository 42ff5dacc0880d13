package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByFolderID filters notes filed under a specific folder.
type ByFolderID struct {
	FolderID uuid.UUID
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderID)
}

// SearchTerm matches a case-insensitive substring over title OR content.
// The OR lives inside this single clause; combining it with other
// specifications still yields a conjunction overall.
type SearchTerm struct {
	Term string
}

func (s SearchTerm) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("(title ILIKE ? OR content ILIKE ?)", pattern, pattern)
}

// HasTag filters notes whose tag set contains the given tag.
type HasTag struct {
	TagID uuid.UUID
}

func (s HasTag) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("EXISTS (SELECT 1 FROM note_tags WHERE note_tags.note_id = notes.id AND note_tags.tag_id = ?)", s.TagID)
}
