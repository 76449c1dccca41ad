package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sawamura/taskhub/internal/database"
	"github.com/sawamura/taskhub/internal/models"
	"github.com/sawamura/taskhub/internal/repository"
	"github.com/sawamura/taskhub/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db, "alice"))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	nsRepo := repository.NewNamespaceRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	users := services.NewUserService(userRepo, taskRepo)
	namespaces := services.NewNamespaceService(nsRepo, userRepo, taskRepo)
	reports := services.NewReportService(userRepo, taskRepo)

	return New(users, namespaces, reports).Router(), db
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, _ := setupServer(t)

	w := doGet(t, router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
}

func TestListUsers(t *testing.T) {
	router, _ := setupServer(t)

	w := doGet(t, router, "/api/users")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Users []models.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Users, 1)
	require.Equal(t, "alice", body.Users[0].Name)
}

func TestListMembers(t *testing.T) {
	router, _ := setupServer(t)

	w := doGet(t, router, "/api/namespaces/default/members")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Members []struct {
			User string `json:"user"`
			Role string `json:"role"`
		} `json:"members"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Members, 1)
	require.Equal(t, "alice", body.Members[0].User)
	require.Equal(t, "owner", body.Members[0].Role)
}

func TestListMembers_UnknownNamespace(t *testing.T) {
	router, _ := setupServer(t)

	w := doGet(t, router, "/api/namespaces/nope/members")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "NOT_FOUND", body["code"])
}

func TestTeamReport(t *testing.T) {
	router, db := setupServer(t)

	var alice models.User
	require.NoError(t, db.Where("name = ?", "alice").First(&alice).Error)
	var ns models.Namespace
	require.NoError(t, db.Where("name = ?", models.DefaultNamespace).First(&ns).Error)

	tasks := []models.Task{
		{Action: models.ActionTask, Title: "open", Status: models.StatusOngoing, OwnerID: alice.ID, AssigneeID: &alice.ID, NamespaceID: ns.ID},
		{Action: models.ActionTask, Title: "done", Status: models.StatusDone, OwnerID: alice.ID, AssigneeID: &alice.ID, NamespaceID: ns.ID},
	}
	require.NoError(t, db.Create(&tasks).Error)

	w := doGet(t, router, "/api/reports/team")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Team []struct {
			User string `json:"user"`
			Open int64  `json:"open"`
			Done int64  `json:"done"`
		} `json:"team"`
		Totals struct {
			Open int64 `json:"open"`
			Done int64 `json:"done"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Team, 1)
	require.Equal(t, "alice", body.Team[0].User)
	require.EqualValues(t, 1, body.Team[0].Open)
	require.EqualValues(t, 1, body.Team[0].Done)
	require.EqualValues(t, 1, body.Totals.Open)
}

func TestWorkloadReport_UnknownUser(t *testing.T) {
	router, _ := setupServer(t)

	w := doGet(t, router, "/api/reports/workload?user=ghost")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsReport_InvalidDays(t *testing.T) {
	router, _ := setupServer(t)

	w := doGet(t, router, "/api/reports/stats?days=nope")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsReport(t *testing.T) {
	router, _ := setupServer(t)

	w := doGet(t, router, "/api/reports/stats?days=7")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		PeriodDays int64 `json:"period_days"`
		Created    int64 `json:"created"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, 7, body.PeriodDays)
	require.EqualValues(t, 0, body.Created)
}
