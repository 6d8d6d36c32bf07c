package mongo

import (
	"github.com/resumely/resumely/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection bindings for the five ordered section kinds.

type (
	ExperienceRepository    = SectionRepository[models.Experience, *models.Experience]
	EducationRepository     = SectionRepository[models.Education, *models.Education]
	SkillRepository         = SectionRepository[models.Skill, *models.Skill]
	ProjectRepository       = SectionRepository[models.Project, *models.Project]
	CertificationRepository = SectionRepository[models.Certification, *models.Certification]
)

func NewExperienceRepo(db *mongo.Database) ExperienceRepository {
	return NewSectionRepo[models.Experience](db, "experiences")
}

func NewEducationRepo(db *mongo.Database) EducationRepository {
	return NewSectionRepo[models.Education](db, "educations")
}

func NewSkillRepo(db *mongo.Database) SkillRepository {
	return NewSectionRepo[models.Skill](db, "skills")
}

func NewProjectRepo(db *mongo.Database) ProjectRepository {
	return NewSectionRepo[models.Project](db, "projects")
}

func NewCertificationRepo(db *mongo.Database) CertificationRepository {
	return NewSectionRepo[models.Certification](db, "certifications")
}
