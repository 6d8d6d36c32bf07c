package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/api/handlers"
	"github.com/resumely/resumely/internal/api/middleware"
)

type Deps struct {
	User          *handlers.UserHandler
	Resume        *handlers.ResumeHandler
	PersonalInfo  *handlers.PersonalInfoHandler
	Experience    *handlers.ExperienceHandler
	Education     *handlers.EducationHandler
	Skill         *handlers.SkillHandler
	Project       *handlers.ProjectHandler
	Certification *handlers.CertificationHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT)
	auth := r.Group("/api")
	auth.Use(middleware.JWTAuth())

	auth.POST("/users", d.User.Create)
	auth.POST("/users/authenticate", d.User.Authenticate)
	auth.GET("/users/email/:email", d.User.GetByEmail)
	auth.GET("/users/:id", d.User.GetByID)
	auth.PUT("/users/:id", d.User.Update)

	auth.POST("/resumes", d.Resume.Create)
	auth.GET("/resumes/user/:userId", d.Resume.ListByUser)
	auth.GET("/resumes/:id", d.Resume.GetByID)
	auth.PUT("/resumes/:id", d.Resume.Update)
	auth.DELETE("/resumes/:id", d.Resume.Delete)
	auth.POST("/resumes/:id/duplicate", d.Resume.Duplicate)
	auth.GET("/resumes/:id/full", d.Resume.GetFull)

	auth.GET("/personal-info/resume/:resumeId", d.PersonalInfo.GetByResume)
	auth.PUT("/personal-info/resume/:resumeId", d.PersonalInfo.Upsert)

	auth.POST("/experiences", d.Experience.Create)
	auth.GET("/experiences/resume/:resumeId", d.Experience.ListByResume)
	auth.PUT("/experiences/reorder/:resumeId", d.Experience.Reorder)
	auth.PUT("/experiences/:id", d.Experience.Update)
	auth.DELETE("/experiences/:id", d.Experience.Delete)

	auth.POST("/educations", d.Education.Create)
	auth.GET("/educations/resume/:resumeId", d.Education.ListByResume)
	auth.PUT("/educations/reorder/:resumeId", d.Education.Reorder)
	auth.PUT("/educations/:id", d.Education.Update)
	auth.DELETE("/educations/:id", d.Education.Delete)

	auth.POST("/skills", d.Skill.Create)
	auth.GET("/skills/resume/:resumeId", d.Skill.ListByResume)
	auth.PUT("/skills/reorder/:resumeId", d.Skill.Reorder)
	auth.PUT("/skills/:id", d.Skill.Update)
	auth.DELETE("/skills/:id", d.Skill.Delete)

	auth.POST("/projects", d.Project.Create)
	auth.GET("/projects/resume/:resumeId", d.Project.ListByResume)
	auth.PUT("/projects/reorder/:resumeId", d.Project.Reorder)
	auth.PUT("/projects/:id", d.Project.Update)
	auth.DELETE("/projects/:id", d.Project.Delete)

	auth.POST("/certifications", d.Certification.Create)
	auth.GET("/certifications/resume/:resumeId", d.Certification.ListByResume)
	auth.PUT("/certifications/reorder/:resumeId", d.Certification.Reorder)
	auth.PUT("/certifications/:id", d.Certification.Update)
	auth.DELETE("/certifications/:id", d.Certification.Delete)
}
