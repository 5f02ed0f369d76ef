package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linikers/rocketstar/api/models"
	"github.com/linikers/rocketstar/api/transport"
	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type CompetitorMetaController struct {
	storage storage.CompetitorStorage
}

func NewCompetitorMetaController(s storage.CompetitorStorage) *CompetitorMetaController {
	return &CompetitorMetaController{storage: s}
}

func (c *CompetitorMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/competitors")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", c.create)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary List all competitors with their aggregate scores
// @Tags competitors
// @Produce json
// @Success 200 {array} models.CompetitorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/competitors [get]
func (c *CompetitorMetaController) getAll(g *gin.Context) {
	competitors, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("COMPETITOR: failed to list competitors: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not list competitors"})
		return
	}

	responses := make([]models.CompetitorResponse, 0, len(competitors))
	for _, competitor := range competitors {
		responses = append(responses, models.TransformCompetitorFromStorage(competitor))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a competitor by ID
// @Tags competitors
// @Produce json
// @Param id path string true "Competitor ID"
// @Success 200 {object} models.CompetitorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/competitors/{id} [get]
func (c *CompetitorMetaController) get(g *gin.Context) {
	id := g.Param("id")
	competitor, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "competitor not found"})
			return
		}
		logging.Log.Errorf("COMPETITOR: failed to get competitor %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not get competitor"})
		return
	}
	g.JSON(http.StatusOK, models.TransformCompetitorFromStorage(competitor))
}

// @Summary Register a competitor
// @Description Creates a competitor with an empty vote set and zeroed aggregates
// @Tags competitors
// @Accept json
// @Produce json
// @Param competitor body models.CompetitorCreateRequest true "Competitor registration"
// @Success 201 {object} models.CompetitorResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/competitors [post]
func (c *CompetitorMetaController) create(g *gin.Context) {
	var req models.CompetitorCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, name and work are required"})
		return
	}

	competitor := &storage.Competitor{
		ID:       generateShortID(),
		Name:     req.Name,
		Work:     req.Work,
		Category: req.Category,
		Votes:    []storage.VoteEntry{},
	}

	if err := c.storage.Create(g.Request.Context(), competitor); err != nil {
		logging.Log.Errorf("COMPETITOR: failed to register competitor: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not register competitor"})
		return
	}

	logging.Log.Infof("COMPETITOR: registered %s (%s)", competitor.Name, competitor.ID)
	g.JSON(http.StatusCreated, models.TransformCompetitorFromStorage(competitor))
}

// @Security AdminToken
// @Summary Delete a competitor
// @Tags competitors
// @Produce json
// @Param id path string true "Competitor ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/competitors/{id} [delete]
func (c *CompetitorMetaController) delete(g *gin.Context) {
	id := g.Param("id")
	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("COMPETITOR: failed to delete competitor %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete competitor"})
		return
	}
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}

func generateShortID() string {
	id, err := gonanoid.Generate(models.Alphabet, models.ShortIDLength)
	if err != nil {
		logging.Log.Errorf("failed to generate id: %v", err)
		return "ERROR"
	}
	return id
}
