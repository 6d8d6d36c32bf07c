package services

import (
	"context"
	"errors"

	"github.com/resumely/resumely/internal/cache"
	"github.com/resumely/resumely/internal/models"
	mongorepo "github.com/resumely/resumely/internal/repositories/mongo"
	"github.com/resumely/resumely/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
)

type PersonalInfoService interface {
	GetByResume(ctx context.Context, rawResumeID string) (*models.PersonalInfo, error)
	Upsert(ctx context.Context, rawResumeID string, fields map[string]any) (*models.PersonalInfo, error)
}

type personalInfoService struct {
	personal mongorepo.PersonalInfoRepository
	resumes  mongorepo.ResumeRepository
	cache    cache.Cache
}

func NewPersonalInfoService(personal mongorepo.PersonalInfoRepository, resumes mongorepo.ResumeRepository, c cache.Cache) PersonalInfoService {
	return &personalInfoService{personal: personal, resumes: resumes, cache: c}
}

// GetByResume never reports absence as an error: a resume without personal
// info reads as an empty document, matching the aggregate join contract.
func (s *personalInfoService) GetByResume(ctx context.Context, rawResumeID string) (*models.PersonalInfo, error) {
	const op = "PersonalInfoService.GetByResume"

	id, ok := utils.ParseID(rawResumeID)
	if !ok {
		return &models.PersonalInfo{}, nil
	}

	pi, err := s.personal.GetByResume(ctx, id)
	if errors.Is(err, utils.ErrNotFound) {
		return &models.PersonalInfo{}, nil
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to get personal info", err)
	}
	return pi, nil
}

func (s *personalInfoService) Upsert(ctx context.Context, rawResumeID string, fields map[string]any) (*models.PersonalInfo, error) {
	const op = "PersonalInfoService.Upsert"

	id, ok := utils.ParseID(rawResumeID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "resume not found", utils.ErrInvalidID)
	}

	// Refuse orphan writes: the parent resume must exist.
	if _, err := s.resumes.GetByID(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "resume not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to check resume", err)
	}

	pi, err := s.personal.Upsert(ctx, id, bson.M(fields))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert personal info", err)
	}

	invalidateFullResume(ctx, s.cache, id)
	return pi, nil
}
