package implementation

import (
	"context"
	"errors"

	"noteful-be/internal/entity"
	"noteful-be/internal/mapper"
	"noteful-be/internal/model"
	"noteful-be/internal/repository/contract"
	"noteful-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tagRows := r.mapper.ToTagModels(note)
	if len(tagRows) > 0 {
		if err := r.db.WithContext(ctx).Create(tagRows).Error; err != nil {
			return err
		}
	}
	*note = *r.mapper.ToEntity(m, tagRows)
	return nil
}

// Update rewrites the note row and replaces its tag membership rows so the
// stored set and ordering always mirror the entity.
func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("note_id = ?", note.Id).Delete(&model.NoteTag{}).Error; err != nil {
		return err
	}
	tagRows := r.mapper.ToTagModels(note)
	if len(tagRows) > 0 {
		if err := r.db.WithContext(ctx).Create(tagRows).Error; err != nil {
			return err
		}
	}
	*note = *r.mapper.ToEntity(m, tagRows)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("note_id = ?", id).Delete(&model.NoteTag{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) DeleteByFolder(ctx context.Context, folderId, userId uuid.UUID) error {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("folder_id = ? AND user_id = ?", folderId, userId).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("note_id IN ?", ids).Delete(&model.NoteTag{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Note{}).Error
}

func (r *NoteRepositoryImpl) PullTag(ctx context.Context, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("tag_id = ?", tagId).Delete(&model.NoteTag{}).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	tags, err := r.tagRows(ctx, m.Id)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m, tags), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return []*entity.Note{}, nil
	}

	ids := make([]uuid.UUID, len(models))
	for i, m := range models {
		ids[i] = m.Id
	}

	var tagRows []*model.NoteTag
	err := r.db.WithContext(ctx).
		Where("note_id IN ?", ids).
		Order("position ASC").
		Find(&tagRows).Error
	if err != nil {
		return nil, err
	}

	byNote := make(map[uuid.UUID][]*model.NoteTag, len(models))
	for _, row := range tagRows {
		byNote[row.NoteId] = append(byNote[row.NoteId], row)
	}

	notes := make([]*entity.Note, len(models))
	for i, m := range models {
		notes[i] = r.mapper.ToEntity(m, byNote[m.Id])
	}
	return notes, nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteRepositoryImpl) tagRows(ctx context.Context, noteId uuid.UUID) ([]*model.NoteTag, error) {
	var rows []*model.NoteTag
	err := r.db.WithContext(ctx).
		Where("note_id = ?", noteId).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
