package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linikers/rocketstar/api/models"
	"github.com/linikers/rocketstar/api/transport"
	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/storage"
)

type JudgeMetaController struct {
	storage storage.JudgeStorage
}

func NewJudgeMetaController(s storage.JudgeStorage) *JudgeMetaController {
	return &JudgeMetaController{storage: s}
}

func (c *JudgeMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/judges")

	group.GET("", c.getAll)
	group.GET("/:id", transport.AdminAuthMiddleware(), c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all judges
// @Tags Meta/Judges
// @Produce json
// @Success 200 {array} models.JudgeResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/judges [get]
func (c *JudgeMetaController) getAll(g *gin.Context) {
	judges, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("META: failed to get all judges: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not list judges"})
		return
	}

	responses := make([]models.JudgeResponse, 0, len(judges))
	for _, judge := range judges {
		responses = append(responses, models.TransformJudgeFromStorage(judge))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// @Summary Get a judge by ID
// @Tags Meta/Judges
// @Produce json
// @Param id path string true "Judge ID"
// @Success 200 {object} models.JudgeResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/judges/{id} [get]
func (c *JudgeMetaController) get(g *gin.Context) {
	id := g.Param("id")
	judge, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "judge not found"})
			return
		}
		logging.Log.Errorf("META: failed to get judge %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not get judge"})
		return
	}
	g.JSON(http.StatusOK, models.TransformJudgeFromStorage(judge))
}

// @Security AdminToken
// @Summary Register a judge
// @Tags Meta/Judges
// @Accept json
// @Produce json
// @Param judge body models.JudgeCreateRequest true "Judge registration"
// @Success 201 {object} models.JudgeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/judges [post]
func (c *JudgeMetaController) create(g *gin.Context) {
	var req models.JudgeCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, name is required"})
		return
	}

	judge := &storage.Judge{
		ID:   generateShortID(),
		Name: req.Name,
	}
	if err := c.storage.Create(g.Request.Context(), judge); err != nil {
		logging.Log.Errorf("META: failed to register judge: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not register judge"})
		return
	}

	logging.Log.Infof("META: registered judge %s (%s)", judge.Name, judge.ID)
	g.JSON(http.StatusCreated, models.TransformJudgeFromStorage(judge))
}

// @Security AdminToken
// @Summary Delete a judge
// @Tags Meta/Judges
// @Produce json
// @Param id path string true "Judge ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/judges/{id} [delete]
func (c *JudgeMetaController) delete(g *gin.Context) {
	id := g.Param("id")
	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("META: failed to delete judge %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete judge"})
		return
	}
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}
