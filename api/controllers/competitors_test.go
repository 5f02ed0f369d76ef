package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	testutils "github.com/linikers/rocketstar/api/controllers/testing"
	"github.com/linikers/rocketstar/api/models"
	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCompetitorRouter(t *testing.T) (*gin.Engine, *storage.MemoryCompetitorStorage) {
	t.Helper()
	logging.Log = logrus.New()
	t.Setenv("ADMIN_TOKEN", testAdminToken)

	competitorStorage := storage.NewMemoryCompetitorStorage()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewCompetitorMetaController(competitorStorage).RegisterRoutes(r)

	return r, competitorStorage
}

func TestCompetitorEndpoints(t *testing.T) {
	t.Run("create assigns a short id and zeroed aggregates", func(t *testing.T) {
		r, _ := setupCompetitorRouter(t)

		req := models.CompetitorCreateRequest{Name: "Ana", Work: "Fineline", Category: "color"}
		res := testutils.PerformRequest(r, http.MethodPost, "/api/competitors", req, nil)

		require.Equal(t, http.StatusCreated, res.Code)
		var response models.CompetitorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Len(t, response.ID, models.ShortIDLength)
		assert.Equal(t, "Ana", response.Name)
		assert.Equal(t, "color", response.Category)
		assert.Zero(t, response.VoteCount)
		assert.Zero(t, response.TotalScore)
	})

	t.Run("create without a work is rejected", func(t *testing.T) {
		r, _ := setupCompetitorRouter(t)

		res := testutils.PerformRequest(r, http.MethodPost, "/api/competitors", map[string]string{"name": "Ana"}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("get returns the created competitor", func(t *testing.T) {
		r, _ := setupCompetitorRouter(t)
		res := testutils.PerformRequest(r, http.MethodPost, "/api/competitors", models.CompetitorCreateRequest{Name: "Ana", Work: "Fineline"}, nil)
		require.Equal(t, http.StatusCreated, res.Code)
		var created models.CompetitorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

		res = testutils.PerformRequest(r, http.MethodGet, "/api/competitors/"+created.ID, nil, nil)

		require.Equal(t, http.StatusOK, res.Code)
		var fetched models.CompetitorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &fetched))
		assert.Equal(t, created, fetched)
	})

	t.Run("get unknown id returns 404", func(t *testing.T) {
		r, _ := setupCompetitorRouter(t)

		res := testutils.PerformRequest(r, http.MethodGet, "/api/competitors/missing", nil, nil)

		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("getAll lists every competitor", func(t *testing.T) {
		r, _ := setupCompetitorRouter(t)
		for _, name := range []string{"Ana", "Bea"} {
			res := testutils.PerformRequest(r, http.MethodPost, "/api/competitors", models.CompetitorCreateRequest{Name: name, Work: "Piece"}, nil)
			require.Equal(t, http.StatusCreated, res.Code)
		}

		res := testutils.PerformRequest(r, http.MethodGet, "/api/competitors", nil, nil)

		require.Equal(t, http.StatusOK, res.Code)
		var responses []models.CompetitorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &responses))
		assert.Len(t, responses, 2)
	})

	t.Run("delete requires the admin token", func(t *testing.T) {
		r, _ := setupCompetitorRouter(t)

		res := testutils.PerformRequest(r, http.MethodDelete, "/api/competitors/any", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("delete removes the competitor", func(t *testing.T) {
		r, competitorStorage := setupCompetitorRouter(t)
		res := testutils.PerformRequest(r, http.MethodPost, "/api/competitors", models.CompetitorCreateRequest{Name: "Ana", Work: "Fineline"}, nil)
		require.Equal(t, http.StatusCreated, res.Code)
		var created models.CompetitorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

		res = testutils.PerformRequest(r, http.MethodDelete, "/api/competitors/"+created.ID, nil, adminHeaders())

		require.Equal(t, http.StatusOK, res.Code)
		_, err := competitorStorage.Get(context.Background(), created.ID)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestJudgeEndpoints(t *testing.T) {
	setup := func(t *testing.T) *gin.Engine {
		t.Helper()
		logging.Log = logrus.New()
		t.Setenv("ADMIN_TOKEN", testAdminToken)
		gin.SetMode(gin.TestMode)
		r := gin.New()
		NewJudgeMetaController(storage.NewMemoryJudgeStorage()).RegisterRoutes(r)
		return r
	}

	t.Run("create and list", func(t *testing.T) {
		r := setup(t)

		res := testutils.PerformRequest(r, http.MethodPost, "/api/meta/judges", models.JudgeCreateRequest{Name: "Judge J1"}, adminHeaders())
		require.Equal(t, http.StatusCreated, res.Code)
		var created models.JudgeResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
		assert.Len(t, created.ID, models.ShortIDLength)

		res = testutils.PerformRequest(r, http.MethodGet, "/api/meta/judges", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		var responses []models.JudgeResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &responses))
		require.Len(t, responses, 1)
		assert.Equal(t, created, responses[0])
	})

	t.Run("create requires the admin token", func(t *testing.T) {
		r := setup(t)

		res := testutils.PerformRequest(r, http.MethodPost, "/api/meta/judges", models.JudgeCreateRequest{Name: "Judge J1"}, nil)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}
