package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/resumely/resumely/config"
	"github.com/resumely/resumely/internal/api/handlers"
	"github.com/resumely/resumely/internal/api/middleware"
	"github.com/resumely/resumely/internal/api/routes"
	"github.com/resumely/resumely/internal/cache"
	"github.com/resumely/resumely/internal/logger"
	"github.com/resumely/resumely/internal/models"
	mongorepo "github.com/resumely/resumely/internal/repositories/mongo"
	"github.com/resumely/resumely/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()
	ctx := context.Background()

	client, db, err := config.NewMongo(ctx)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	l.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(db); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	// Redis is optional: without it the service runs uncached.
	var c cache.Cache
	if rdb, err := config.NewRedis(ctx); err != nil {
		l.WithError(err).Warn("Redis unavailable, running without cache")
	} else {
		c = cache.NewRedisCache(rdb)
		l.Info("Redis connected")
	}

	userRepo := mongorepo.NewUserRepo(db)
	resumeRepo := mongorepo.NewResumeRepo(db)
	personalRepo := mongorepo.NewPersonalInfoRepo(db)
	expRepo := mongorepo.NewExperienceRepo(db)
	eduRepo := mongorepo.NewEducationRepo(db)
	skillRepo := mongorepo.NewSkillRepo(db)
	projRepo := mongorepo.NewProjectRepo(db)
	certRepo := mongorepo.NewCertificationRepo(db)

	resumeSvc := services.NewResumeService(services.ResumeServiceDeps{
		Resumes:        resumeRepo,
		Personal:       personalRepo,
		Experiences:    expRepo,
		Educations:     eduRepo,
		Skills:         skillRepo,
		Projects:       projRepo,
		Certifications: certRepo,
		Cache:          c,
	})

	d := routes.Deps{
		User:         handlers.NewUserHandler(services.NewUserService(userRepo)),
		Resume:       handlers.NewResumeHandler(resumeSvc),
		PersonalInfo: handlers.NewPersonalInfoHandler(services.NewPersonalInfoService(personalRepo, resumeRepo, c)),
		Experience: handlers.NewExperienceHandler(
			services.NewSectionService[models.Experience]("ExperienceService", expRepo, resumeRepo, c)),
		Education: handlers.NewEducationHandler(
			services.NewSectionService[models.Education]("EducationService", eduRepo, resumeRepo, c)),
		Skill: handlers.NewSkillHandler(
			services.NewSectionService[models.Skill]("SkillService", skillRepo, resumeRepo, c)),
		Project: handlers.NewProjectHandler(
			services.NewSectionService[models.Project]("ProjectService", projRepo, resumeRepo, c)),
		Certification: handlers.NewCertificationHandler(
			services.NewSectionService[models.Certification]("CertificationService", certRepo, resumeRepo, c)),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	routes.RegisterRoutes(r, d)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
