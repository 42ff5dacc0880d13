package mapper

import (
	"github.com/google/uuid"

	"noteful-be/internal/entity"
	"noteful-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

// ToEntity maps the note row plus its tag membership rows. The caller is
// expected to pass tag rows already ordered by position.
func (m *NoteMapper) ToEntity(n *model.Note, tags []*model.NoteTag) *entity.Note {
	if n == nil {
		return nil
	}

	tagIds := make([]uuid.UUID, 0, len(tags))
	for _, t := range tags {
		tagIds = append(tagIds, t.TagId)
	}

	return &entity.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		FolderId:  n.FolderId,
		TagIds:    tagIds,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		FolderId:  n.FolderId,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// ToTagModels expands the entity's ordered tag list into membership rows.
func (m *NoteMapper) ToTagModels(n *entity.Note) []*model.NoteTag {
	rows := make([]*model.NoteTag, 0, len(n.TagIds))
	for i, tagId := range n.TagIds {
		rows = append(rows, &model.NoteTag{
			NoteId:   n.Id,
			TagId:    tagId,
			Position: i,
		})
	}
	return rows
}
