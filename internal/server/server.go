// Package server exposes the directories and reports read-only over HTTP.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sawamura/taskhub/internal/services"
	"github.com/sawamura/taskhub/internal/taskerr"
)

// Server serves the read-only API. It never mutates the store.
type Server struct {
	users      *services.UserService
	namespaces *services.NamespaceService
	reports    *services.ReportService
}

// New creates a Server over the given services.
func New(users *services.UserService, namespaces *services.NamespaceService, reports *services.ReportService) *Server {
	return &Server{
		users:      users,
		namespaces: namespaces,
		reports:    reports,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/users", s.listUsers)
		api.GET("/namespaces", s.listNamespaces)
		api.GET("/namespaces/:name/members", s.listMembers)

		reports := api.Group("/reports")
		{
			reports.GET("/team", s.teamReport)
			reports.GET("/workload", s.workloadReport)
			reports.GET("/stats", s.statsReport)
		}
	}

	return r
}

// Run starts the server on addr.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) listNamespaces(c *gin.Context) {
	namespaces, err := s.namespaces.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"namespaces": namespaces})
}

func (s *Server) listMembers(c *gin.Context) {
	members, err := s.namespaces.Members(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(members))
	for _, m := range members {
		out = append(out, gin.H{
			"user":       m.UserName(),
			"role":       m.Role,
			"created_at": m.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"members": out})
}

func (s *Server) teamReport(c *gin.Context) {
	team, err := s.reports.Team()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team.JSONDoc())
}

func (s *Server) workloadReport(c *gin.Context) {
	var userFilter *string
	if user := c.Query("user"); user != "" {
		userFilter = &user
	}

	workload, err := s.reports.Workload(userFilter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workload.JSONDoc())
}

func (s *Server) statsReport(c *gin.Context) {
	days := int64(30)
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
			return
		}
		days = parsed
	}

	stats, err := s.reports.Stats(days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats.JSONDoc())
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if taskerr.IsNotFound(err) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"code":  taskerr.CodeOf(err),
		"error": err.Error(),
	})
}
