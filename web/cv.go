package web

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campushire/platform/auth"
	"github.com/campushire/platform/cv"
)

// GenerateStudentCV asks the CV service for the member's CV, keeps a copy in
// the upload folder and sends it as a download
func (s *Server) GenerateStudentCV(c *gin.Context) {
	ctx := c.Request.Context()
	userID := auth.UserID(c)
	log := s.logger.WithFields(logrus.Fields{"user_id": userID, "action": "generate_cv"})

	details, err := s.backend.UserDetails(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch user details")
		redirect(c, "/profile", categoryDanger, "Failed to fetch user details. Please try again.")
		return
	}

	data, err := s.cvService.GenerateCV(ctx, userID, details)
	if err != nil {
		log.WithError(err).Error("CV service failed")
		redirect(c, "/profile", categoryDanger, "Failed to generate CV. Please try again.")
		return
	}

	fileName := cv.FileName(userID)
	path, err := s.cvFiles.Save(ctx, fileName, data)
	if err != nil {
		log.WithError(err).Error("Failed to save CV")
		redirect(c, "/profile", categoryDanger, "Failed to generate CV. Please try again.")
		return
	}

	log.WithField("path", path).Info("CV generated")
	c.FileAttachment(path, fileName)
}
