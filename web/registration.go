package web

import (
	"github.com/gin-gonic/gin"

	"github.com/campushire/platform/auth"
	"github.com/campushire/platform/models"
)

// StudentRegistrationForm shows the student profile form
func (s *Server) StudentRegistrationForm(c *gin.Context) {
	s.render(c, "student_registration.html", s.studentFormData())
}

// StudentRegistration forwards the student profile to the backend
func (s *Server) StudentRegistration(c *gin.Context) {
	userID := auth.UserID(c)
	req := &models.StudentRegistrationRequest{
		UserID:      models.FlexibleID(userID),
		Description: c.PostForm("description"),
		Jobs:        studentJobs(c),
		Education:   studentEducation(c),
	}

	if err := s.backend.RegisterStudent(c.Request.Context(), req); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Student registration failed")
		data := s.studentFormData()
		data["Message"] = "Failed to register student. Please try again."
		data["Category"] = categoryDanger
		s.render(c, "student_registration.html", data)
		return
	}

	redirect(c, "/", categorySuccess, "Student registration successful!")
}

// CompanyRegistrationForm shows the company profile form
func (s *Server) CompanyRegistrationForm(c *gin.Context) {
	s.render(c, "company_registration.html", gin.H{"Cities": s.cities})
}

// CompanyRegistration forwards the company profile to the backend
func (s *Server) CompanyRegistration(c *gin.Context) {
	userID := auth.UserID(c)
	req := &models.CompanyRegistrationRequest{
		UserID:      models.FlexibleID(userID),
		Name:        c.PostForm("company_name"),
		Size:        c.PostForm("company_size"),
		Address:     c.PostForm("address"),
		Description: c.PostForm("description"),
	}

	if err := s.backend.RegisterCompany(c.Request.Context(), req); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Company registration failed")
		s.render(c, "company_registration.html", gin.H{
			"Cities":   s.cities,
			"Message":  "Failed to register company. Please try again.",
			"Category": categoryDanger,
		})
		return
	}

	redirect(c, "/", categorySuccess, "Company registration successful!")
}

func (s *Server) studentFormData() gin.H {
	return gin.H{
		"Majors": s.majors,
		"Months": Months,
		"Years":  Years(),
	}
}

// studentJobs pairs the repeated jobs[][...] fields by position. Entries
// beyond the shortest field list are ignored.
func studentJobs(c *gin.Context) []models.StudentJob {
	fields := formColumns(c, "jobs",
		"title", "company", "startMonth", "startYear", "endMonth", "endYear", "description")

	jobs := make([]models.StudentJob, 0, len(fields))
	for _, f := range fields {
		jobs = append(jobs, models.StudentJob{
			Title:       f[0],
			Company:     f[1],
			StartDate:   monthYear(f[2], f[3]),
			EndDate:     monthYear(f[4], f[5]),
			Description: f[6],
		})
	}
	return jobs
}

// studentEducation pairs the repeated education[][...] fields by position
func studentEducation(c *gin.Context) []models.StudentEducation {
	fields := formColumns(c, "education",
		"school", "degree", "fieldOfStudy", "startMonth", "startYear", "endMonth", "endYear", "description")

	education := make([]models.StudentEducation, 0, len(fields))
	for _, f := range fields {
		education = append(education, models.StudentEducation{
			School:       f[0],
			Degree:       f[1],
			FieldOfStudy: f[2],
			StartDate:    monthYear(f[3], f[4]),
			EndDate:      monthYear(f[5], f[6]),
			Description:  f[7],
		})
	}
	return education
}

// formColumns reads prefix[][name] for every name and returns one row per
// entry, each row holding the values in the order of names
func formColumns(c *gin.Context, prefix string, names ...string) [][]string {
	columns := make([][]string, len(names))
	rows := -1
	for i, name := range names {
		columns[i] = c.PostFormArray(prefix + "[][" + name + "]")
		if rows < 0 || len(columns[i]) < rows {
			rows = len(columns[i])
		}
	}

	out := make([][]string, rows)
	for r := range out {
		out[r] = make([]string, len(names))
		for i := range names {
			out[r][i] = columns[i][r]
		}
	}
	return out
}

// monthYear formats a form date as "<Month>, <Year>", or "" unless both parts are set
func monthYear(month, year string) string {
	if month == "" || year == "" {
		return ""
	}
	return month + ", " + year
}
