package services

import (
	"context"
	"errors"

	"github.com/resumely/resumely/internal/cache"
	"github.com/resumely/resumely/internal/models"
	mongorepo "github.com/resumely/resumely/internal/repositories/mongo"
	"github.com/resumely/resumely/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionService is the shared business layer for the five ordered section
// kinds. Creation validates the parent resume, applies the append-at-end
// ordering policy unless the document carries an explicit ordinal, and
// every write invalidates the cached full-resume aggregate.
type SectionService[T any, PT interface {
	*T
	models.Sectioner
}] interface {
	Create(ctx context.Context, rawResumeID string, doc PT, explicitOrder bool) (PT, error)
	ListByResume(ctx context.Context, rawResumeID string) ([]T, error)
	Update(ctx context.Context, rawID string, fields map[string]any) (PT, error)
	Delete(ctx context.Context, rawID string) error
	Reorder(ctx context.Context, rawResumeID string, rawIDs []string) error
}

type sectionService[T any, PT interface {
	*T
	models.Sectioner
}] struct {
	kind     string // for op names, ex: "ExperienceService"
	sections mongorepo.SectionRepository[T, PT]
	resumes  mongorepo.ResumeRepository
	cache    cache.Cache
}

func NewSectionService[T any, PT interface {
	*T
	models.Sectioner
}](kind string, sections mongorepo.SectionRepository[T, PT], resumes mongorepo.ResumeRepository, c cache.Cache) SectionService[T, PT] {
	return &sectionService[T, PT]{kind: kind, sections: sections, resumes: resumes, cache: c}
}

// sectionDefaulter lets a section kind normalize optional embedded
// sequences (experience bullets, education achievements) before storage.
type sectionDefaulter interface {
	ApplyDefaults()
}

func (s *sectionService[T, PT]) Create(ctx context.Context, rawResumeID string, doc PT, explicitOrder bool) (PT, error) {
	op := s.kind + ".Create"

	resumeID, ok := utils.ParseID(rawResumeID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "resume not found", utils.ErrInvalidID)
	}

	m := doc.Meta()
	m.ResumeID = resumeID

	// Refuse orphans: the referenced resume must exist at creation time.
	if _, err := s.resumes.GetByID(ctx, m.ResumeID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to check resume", err)
	}

	if !explicitOrder {
		next, err := s.sections.NextOrderIndex(ctx, m.ResumeID)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to compute order index", err)
		}
		m.OrderIndex = next
	}

	if d, ok := any(doc).(sectionDefaulter); ok {
		d.ApplyDefaults()
	}

	if err := s.sections.Create(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create section", err)
	}

	invalidateFullResume(ctx, s.cache, m.ResumeID)
	return doc, nil
}

// ListByResume yields an empty slice, never an error, for unknown or
// malformed resume ids.
func (s *sectionService[T, PT]) ListByResume(ctx context.Context, rawResumeID string) ([]T, error) {
	op := s.kind + ".ListByResume"

	id, ok := utils.ParseID(rawResumeID)
	if !ok {
		return []T{}, nil
	}

	out, err := s.sections.ListByResume(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list sections", err)
	}
	return out, nil
}

func (s *sectionService[T, PT]) Update(ctx context.Context, rawID string, fields map[string]any) (PT, error) {
	op := s.kind + ".Update"

	id, ok := utils.ParseID(rawID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "section not found", utils.ErrInvalidID)
	}
	if len(fields) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no fields to update", nil)
	}

	if err := s.sections.Update(ctx, id, bson.M(fields)); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "section not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update section", err)
	}

	doc, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload section", err)
	}

	invalidateFullResume(ctx, s.cache, doc.Meta().ResumeID)
	return doc, nil
}

func (s *sectionService[T, PT]) Delete(ctx context.Context, rawID string) error {
	op := s.kind + ".Delete"

	id, ok := utils.ParseID(rawID)
	if !ok {
		return utils.E(utils.CodeNotFound, op, "section not found", utils.ErrInvalidID)
	}

	doc, err := s.sections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "section not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load section", err)
	}

	if err := s.sections.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "section not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete section", err)
	}

	invalidateFullResume(ctx, s.cache, doc.Meta().ResumeID)
	return nil
}

// Reorder rewrites the ordinals of the caller-supplied complete sequence to
// its 0-based positions. A malformed member refuses the whole operation so
// a partial rewrite can never leave duplicate ordinals behind.
func (s *sectionService[T, PT]) Reorder(ctx context.Context, rawResumeID string, rawIDs []string) error {
	op := s.kind + ".Reorder"

	resumeID, ok := utils.ParseID(rawResumeID)
	if !ok {
		return utils.E(utils.CodeNotFound, op, "resume not found", utils.ErrInvalidID)
	}

	ids := make([]primitive.ObjectID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, ok := utils.ParseID(raw)
		if !ok {
			return utils.E(utils.CodeInvalidArgument, op, "invalid section id in sequence", utils.ErrInvalidID)
		}
		ids = append(ids, id)
	}

	if err := s.sections.Reorder(ctx, resumeID, ids); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to reorder sections", err)
	}

	invalidateFullResume(ctx, s.cache, resumeID)
	return nil
}
