package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushire/platform/auth"
	"github.com/campushire/platform/models"
)

// Dashboard shows the latest jobs. Visitors get the public landing page,
// members the dashboard with their own details.
func (s *Server) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	jobs, err := s.backend.Jobs(ctx, true)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to fetch latest jobs")
	}

	if !auth.IsAuthenticated(c) {
		s.render(c, "main.html", gin.H{"Jobs": jobs})
		return
	}

	s.render(c, "index.html", gin.H{
		"User": s.currentUser(c),
		"Jobs": jobs,
	})
}

// Jobs lists the latest job posts
func (s *Server) Jobs(c *gin.Context) {
	user := s.currentUser(c)

	jobs, err := s.backend.Jobs(c.Request.Context(), true)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to fetch jobs")
	}

	s.render(c, "jobs.html", gin.H{"User": user, "Jobs": jobs})
}

// JobView shows a single job post
func (s *Server) JobView(c *gin.Context) {
	jobID, ok := numericParam(c, "id")
	if !ok {
		return
	}

	job, err := s.backend.Job(c.Request.Context(), jobID)
	if err != nil {
		s.logger.WithError(err).WithField("job_id", jobID).Warn("Failed to fetch job")
		redirect(c, "/", categoryDanger, "Failed to fetch job details. Please try again.")
		return
	}

	s.render(c, "job_view.html", gin.H{"User": s.currentUser(c), "Job": job})
}

// PostJobForm shows the new job form
func (s *Server) PostJobForm(c *gin.Context) {
	user, ok := s.roleUser(c)
	if !ok {
		return
	}
	s.render(c, "new_job.html", gin.H{"User": user, "Cities": s.cities})
}

// PostJob forwards a new job post to the backend
func (s *Server) PostJob(c *gin.Context) {
	userID := auth.UserID(c)
	job := &models.JobPost{
		UserID:       models.FlexibleID(userID),
		Title:        c.PostForm("title"),
		Salary:       c.PostForm("salary"),
		Address:      c.PostForm("location"),
		Description:  c.PostForm("job_description"),
		Requirements: c.PostForm("requirements"),
		Status:       models.JobStatusOpen,
	}

	if err := s.backend.PostJob(c.Request.Context(), job); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to post job")
		s.render(c, "new_job.html", gin.H{
			"User":     s.currentUser(c),
			"Cities":   s.cities,
			"Message":  "Failed to post job. Please try again.",
			"Category": categoryDanger,
		})
		return
	}

	redirect(c, "/", categorySuccess, "Job posted successfully!")
}

// RoleSelection lets a new member choose between student and company
func (s *Server) RoleSelection(c *gin.Context) {
	s.render(c, "role_selection.html", nil)
}

// Profile shows the member's own profile for their role
func (s *Server) Profile(c *gin.Context) {
	user, ok := s.roleUser(c)
	if !ok {
		return
	}

	if user.IsStudent() {
		s.render(c, "student_profile.html", gin.H{"User": user})
		return
	}
	s.render(c, "company_profile.html", gin.H{"User": user})
}

// CompanyView shows another company's public profile
func (s *Server) CompanyView(c *gin.Context) {
	userID, ok := numericParam(c, "userID")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	company, err := s.backend.Company(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("company_id", userID).Warn("Failed to fetch company")
		redirect(c, "/", "", "")
		return
	}
	company.WithPublicPaths()

	user, err := s.backend.UserDetails(ctx, auth.UserID(c))
	if err != nil {
		redirect(c, "/", "", "")
		return
	}
	user.WithPublicPaths()

	s.render(c, "profile_view_company.html", gin.H{"User": user, "Company": company})
}

// StudentView shows another student's public profile
func (s *Server) StudentView(c *gin.Context) {
	userID, ok := numericParam(c, "userID")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	student, err := s.backend.Student(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("student_id", userID).Warn("Failed to fetch student")
		redirect(c, "/", "", "")
		return
	}
	student.WithPublicPaths()

	user, err := s.backend.UserDetails(ctx, auth.UserID(c))
	if err != nil {
		redirect(c, "/", "", "")
		return
	}
	user.WithPublicPaths()

	s.render(c, "profile_view_student.html", gin.H{"User": user, "Student": student})
}

// currentUser fetches the member's details, or nil when the backend fails
func (s *Server) currentUser(c *gin.Context) *models.UserDetails {
	userID := auth.UserID(c)
	if userID == "" {
		return nil
	}

	user, err := s.backend.UserDetails(c.Request.Context(), userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to fetch user details")
		return nil
	}
	user.WithPublicPaths()
	return user
}

// roleUser looks up the member's role and details. Failures and unknown
// roles redirect to the login page and return false.
func (s *Server) roleUser(c *gin.Context) (*models.UserDetails, bool) {
	ctx := c.Request.Context()
	userID := auth.UserID(c)

	role, err := s.backend.UserRole(ctx, userID)
	if err != nil {
		redirect(c, s.loginURL, categoryDanger, "Error fetching user role: "+upstreamMessage(err))
		return nil, false
	}

	user, err := s.backend.UserDetails(ctx, userID)
	if err != nil {
		redirect(c, s.loginURL, categoryDanger, "Error fetching user details: "+upstreamMessage(err))
		return nil, false
	}
	user.Role = role

	if !user.IsStudent() && !user.IsCompany() {
		redirect(c, s.loginURL, categoryDanger, "Invalid user role.")
		return nil, false
	}

	user.WithPublicPaths()
	return user, true
}

// numericParam reads an integer path parameter, answering 404 otherwise
func numericParam(c *gin.Context, name string) (string, bool) {
	value := c.Param(name)
	if _, err := strconv.Atoi(value); err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return "", false
	}
	return value, true
}
