package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/resumely/resumely/internal/cache"
	"github.com/resumely/resumely/internal/models"
	mongorepo "github.com/resumely/resumely/internal/repositories/mongo"
	"github.com/resumely/resumely/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// Bound for the whole six-way section fan-out inside GetFull. If any
	// sub-fetch is still pending at the deadline the assembly fails as a
	// whole; it never returns a partially populated aggregate.
	fullResumeTimeout = 5 * time.Second

	fullResumeCacheTTL = time.Minute
)

func fullResumeCacheKey(id primitive.ObjectID) string {
	return "resume:full:" + id.Hex()
}

// invalidateFullResume drops the cached aggregate after any write under the
// resume. Cache errors are deliberately ignored; the next read repopulates.
func invalidateFullResume(ctx context.Context, c cache.Cache, id primitive.ObjectID) {
	if c == nil {
		return
	}
	_ = c.Del(ctx, fullResumeCacheKey(id))
}

type ResumeService interface {
	Create(ctx context.Context, rawUserID, title, template string) (*models.Resume, error)
	GetByID(ctx context.Context, rawID string) (*models.Resume, error)
	ListByUser(ctx context.Context, rawUserID string) ([]models.Resume, error)
	Update(ctx context.Context, rawID string, fields map[string]any) (*models.Resume, error)
	Duplicate(ctx context.Context, rawID string) (*models.Resume, error)
	Delete(ctx context.Context, rawID string) error
	GetFull(ctx context.Context, rawID string) (*models.FullResume, error)
}

// ResumeServiceDeps carries the seven repositories the aggregate spans plus
// the optional cache (nil disables caching, used by tests).
type ResumeServiceDeps struct {
	Resumes        mongorepo.ResumeRepository
	Personal       mongorepo.PersonalInfoRepository
	Experiences    mongorepo.ExperienceRepository
	Educations     mongorepo.EducationRepository
	Skills         mongorepo.SkillRepository
	Projects       mongorepo.ProjectRepository
	Certifications mongorepo.CertificationRepository
	Cache          cache.Cache
}

type resumeService struct {
	d ResumeServiceDeps
}

func NewResumeService(d ResumeServiceDeps) ResumeService {
	return &resumeService{d: d}
}

// Create builds the aggregate root and then cascades the default dependent
// records: a personal info shell, one experience with a single empty
// bullet, and one education with a single empty achievement. The steps are
// strictly sequential (dependents need the freshly minted root id) and not
// transactional: a dependent-step failure leaves the earlier writes in
// place and surfaces as a partial-write error naming the new resume.
func (s *resumeService) Create(ctx context.Context, rawUserID, title, template string) (*models.Resume, error) {
	const op = "ResumeService.Create"

	userID, ok := utils.ParseID(rawUserID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "user not found", utils.ErrInvalidID)
	}

	if strings.TrimSpace(title) == "" {
		title = models.DefaultResumeTitle
	}
	if strings.TrimSpace(template) == "" {
		template = models.DefaultResumeTemplate
	}

	rs := &models.Resume{UserID: userID, Title: title, Template: template}
	if err := s.d.Resumes.Create(ctx, rs); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create resume", err)
	}

	if _, err := s.d.Personal.Upsert(ctx, rs.ID, bson.M{}); err != nil {
		return nil, s.partialCascade(op, rs.ID, "personal info", err)
	}

	exp := &models.Experience{
		SectionMeta: models.SectionMeta{ResumeID: rs.ID, OrderIndex: 0},
		Bullets:     []string{""},
	}
	if err := s.d.Experiences.Create(ctx, exp); err != nil {
		return nil, s.partialCascade(op, rs.ID, "experience", err)
	}

	edu := &models.Education{
		SectionMeta:  models.SectionMeta{ResumeID: rs.ID, OrderIndex: 0},
		Achievements: []string{""},
	}
	if err := s.d.Educations.Create(ctx, edu); err != nil {
		return nil, s.partialCascade(op, rs.ID, "education", err)
	}

	return rs, nil
}

func (s *resumeService) partialCascade(op string, resumeID primitive.ObjectID, step string, err error) error {
	return utils.E(utils.CodePartialWrite, op,
		"resume "+resumeID.Hex()+" created but default "+step+" was not", err)
}

func (s *resumeService) GetByID(ctx context.Context, rawID string) (*models.Resume, error) {
	const op = "ResumeService.GetByID"

	id, ok := utils.ParseID(rawID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "resume not found", utils.ErrInvalidID)
	}

	rs, err := s.d.Resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get resume", err)
	}
	return rs, nil
}

// ListByUser resolves malformed user ids to an empty list, the same
// outcome as a user with no resumes.
func (s *resumeService) ListByUser(ctx context.Context, rawUserID string) ([]models.Resume, error) {
	const op = "ResumeService.ListByUser"

	userID, ok := utils.ParseID(rawUserID)
	if !ok {
		return []models.Resume{}, nil
	}

	out, err := s.d.Resumes.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list resumes", err)
	}
	return out, nil
}

func (s *resumeService) Update(ctx context.Context, rawID string, fields map[string]any) (*models.Resume, error) {
	const op = "ResumeService.Update"

	id, ok := utils.ParseID(rawID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "resume not found", utils.ErrInvalidID)
	}
	if len(fields) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no fields to update", nil)
	}

	if err := s.d.Resumes.Update(ctx, id, bson.M(fields)); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update resume", err)
	}

	rs, err := s.d.Resumes.GetByID(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload resume", err)
	}

	invalidateFullResume(ctx, s.d.Cache, id)
	return rs, nil
}

// Duplicate shallow-copies the resume's scalar fields under a fresh
// identity and fresh timestamps. Dependent sections stay bound to the
// source resume and are not copied.
func (s *resumeService) Duplicate(ctx context.Context, rawID string) (*models.Resume, error) {
	const op = "ResumeService.Duplicate"

	src, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	cp := &models.Resume{
		UserID:   src.UserID,
		Title:    src.Title,
		Template: src.Template,
	}
	if err := s.d.Resumes.Create(ctx, cp); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to duplicate resume", err)
	}
	return cp, nil
}

// Delete removes the root and cascades over the six dependent collections
// so no orphan section documents survive the resume.
func (s *resumeService) Delete(ctx context.Context, rawID string) error {
	const op = "ResumeService.Delete"

	id, ok := utils.ParseID(rawID)
	if !ok {
		return utils.E(utils.CodeNotFound, op, "resume not found", utils.ErrInvalidID)
	}

	if _, err := s.d.Resumes.GetByID(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load resume", err)
	}

	cascade := []func(context.Context, primitive.ObjectID) error{
		s.d.Personal.DeleteByResume,
		s.d.Experiences.DeleteByResume,
		s.d.Educations.DeleteByResume,
		s.d.Skills.DeleteByResume,
		s.d.Projects.DeleteByResume,
		s.d.Certifications.DeleteByResume,
	}
	for _, del := range cascade {
		if err := del(ctx, id); err != nil {
			return utils.E(utils.CodePartialWrite, op, "failed to delete resume sections", err)
		}
	}

	if err := s.d.Resumes.Delete(ctx, id); err != nil && !errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeInternal, op, "failed to delete resume", err)
	}

	invalidateFullResume(ctx, s.d.Cache, id)
	return nil
}

// GetFull assembles the aggregate: root first, then the six dependent
// fetches fanned out concurrently and joined all-or-nothing. Absent
// personal info joins as an empty object and empty lists stay empty
// slices, so the result always carries all six section keys.
func (s *resumeService) GetFull(ctx context.Context, rawID string) (*models.FullResume, error) {
	const op = "ResumeService.GetFull"

	id, ok := utils.ParseID(rawID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "resume not found", utils.ErrInvalidID)
	}

	if s.d.Cache != nil {
		var cached models.FullResume
		if hit, err := s.d.Cache.GetJSON(ctx, fullResumeCacheKey(id), &cached); err == nil && hit {
			return &cached, nil
		}
	}

	rs, err := s.d.Resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get resume", err)
	}

	fanCtx, cancel := context.WithTimeout(ctx, fullResumeTimeout)
	defer cancel()

	full := &models.FullResume{Resume: *rs}
	g, gctx := errgroup.WithContext(fanCtx)

	g.Go(func() error {
		pi, err := s.d.Personal.GetByResume(gctx, id)
		if errors.Is(err, utils.ErrNotFound) {
			full.PersonalInfo = &models.PersonalInfo{}
			return nil
		}
		if err != nil {
			return err
		}
		full.PersonalInfo = pi
		return nil
	})
	g.Go(func() error {
		out, err := s.d.Experiences.ListByResume(gctx, id)
		full.Experiences = out
		return err
	})
	g.Go(func() error {
		out, err := s.d.Educations.ListByResume(gctx, id)
		full.Educations = out
		return err
	})
	g.Go(func() error {
		out, err := s.d.Skills.ListByResume(gctx, id)
		full.Skills = out
		return err
	})
	g.Go(func() error {
		out, err := s.d.Projects.ListByResume(gctx, id)
		full.Projects = out
		return err
	})
	g.Go(func() error {
		out, err := s.d.Certifications.ListByResume(gctx, id)
		full.Certifications = out
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, utils.E(utils.CodeTimeout, op, "timed out loading resume sections", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load resume sections", err)
	}

	if s.d.Cache != nil {
		_ = s.d.Cache.SetJSON(ctx, fullResumeCacheKey(id), full, fullResumeCacheTTL)
	}
	return full, nil
}
