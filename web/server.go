package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campushire/platform/apiclient"
	"github.com/campushire/platform/auth"
	"github.com/campushire/platform/config"
	"github.com/campushire/platform/handlers"
	"github.com/campushire/platform/storage"
	"github.com/campushire/platform/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// Message categories shown by the page banner
const (
	categorySuccess = "success"
	categoryDanger  = "danger"
)

// Server is the server-rendered front end. It forwards form data to the
// backend API and asks the CV service for generated CVs.
type Server struct {
	backend   *apiclient.Backend
	cvService *apiclient.CVService
	jwt       *auth.JWTService
	templates *template.Template

	majors []string
	cities []City

	loginURL  string
	cvFiles   *storage.LocalStore
	staticDir string

	logger *logrus.Entry
}

// NewServer creates the front end. Missing reference data files are logged
// and leave the corresponding form lists empty.
func NewServer(cfg *config.Config, backend *apiclient.Backend, cvService *apiclient.CVService) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		backend:   backend,
		cvService: cvService,
		jwt:       auth.NewJWTService(cfg),
		templates: tmpl,
		loginURL:  cfg.LoginURL,
		cvFiles:   storage.NewLocalStore(cfg.CVUploadFolder),
		staticDir: cfg.StaticDir,
		logger:    utils.GetLogger().WithField("component", "front"),
	}

	if s.majors, err = LoadMajors(cfg.MajorsCSV); err != nil {
		s.logger.WithError(err).WithField("path", cfg.MajorsCSV).Warn("Majors list unavailable")
	}
	if s.cities, err = LoadCities(cfg.CitiesCSV); err != nil {
		s.logger.WithError(err).WithField("path", cfg.CitiesCSV).Warn("Cities list unavailable")
	}

	return s, nil
}

// Router builds the gin engine serving every front-end page
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(handlers.RequestIDMiddleware())
	router.Use(auth.OptionalIdentity(s.jwt))

	router.SetHTMLTemplate(s.templates)
	router.Static("/static", s.staticDir)

	router.GET("/", s.Dashboard)

	member := router.Group("/")
	member.Use(auth.RequireIdentity(s.loginURL))
	{
		member.GET("/jobs", s.Jobs)
		member.GET("/job/:id", s.JobView)
		member.GET("/post_job", s.PostJobForm)
		member.POST("/post_job", s.PostJob)

		member.GET("/role_selection", s.RoleSelection)
		member.GET("/student_registration", s.StudentRegistrationForm)
		member.POST("/student_registration", s.StudentRegistration)
		member.GET("/company_registration", s.CompanyRegistrationForm)
		member.POST("/company_registration", s.CompanyRegistration)

		member.GET("/profile", s.Profile)
		member.GET("/company/:userID", s.CompanyView)
		member.GET("/student/:userID", s.StudentView)
		member.POST("/generate-student-cv", s.GenerateStudentCV)
	}

	return router
}

// render executes a page template with the banner message of the request
func (s *Server) render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Message"]; !ok {
		data["Message"] = c.Query("message")
		data["Category"] = c.Query("category")
	}
	data["LoggedIn"] = auth.IsAuthenticated(c)
	c.HTML(http.StatusOK, name, data)
}

// redirect sends the browser to target with a banner message. The message
// travels in the query string since the front end keeps no session.
func redirect(c *gin.Context, target, category, message string) {
	if message != "" {
		if u, err := url.Parse(target); err == nil {
			q := u.Query()
			q.Set("message", message)
			q.Set("category", category)
			u.RawQuery = q.Encode()
			target = u.String()
		}
	}
	c.Redirect(http.StatusFound, target)
}

// upstreamMessage renders an upstream failure for the banner
func upstreamMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
