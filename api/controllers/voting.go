package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linikers/rocketstar/api/models"
	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/scoring"
	"github.com/linikers/rocketstar/storage"
)

type VotingController struct {
	scoring     *scoring.Service
	competitors storage.CompetitorStorage
}

func NewVotingController(scoringService *scoring.Service, competitorStorage storage.CompetitorStorage) *VotingController {
	return &VotingController{
		scoring:     scoringService,
		competitors: competitorStorage,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/vote", c.submitVote)
	group.GET("/vote/:competitorId", c.getVotesByCompetitor)
}

// submitVote godoc
// @Summary Submit a judge's scores for a competitor
// @Description Records the six criterion scores from one judge, replacing any previous vote from the same judge, and returns the competitor with recomputed aggregates
// @Tags voting
// @Accept json
// @Produce json
// @Param vote body models.SubmitVoteRequest true "Vote submission"
// @Success 200 {object} models.CompetitorResponse
// @Failure 400 {object} models.ErrorResponse "Missing or out-of-range scores"
// @Failure 404 {object} models.ErrorResponse "Unknown competitor or judge"
// @Failure 409 {object} models.ErrorResponse "Concurrent write conflict persisted beyond retries"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/vote [post]
func (c *VotingController) submitVote(g *gin.Context) {
	var req models.SubmitVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request: all six scores are required and must be between 0 and 10"})
		return
	}

	scores := scoring.Scores{
		Anatomy:      *req.Anatomy,
		Creativity:   *req.Creativity,
		Pigmentation: *req.Pigmentation,
		Traces:       *req.Traces,
		Readability:  *req.Readability,
		VisualImpact: *req.VisualImpact,
	}

	competitor, err := c.scoring.SubmitVote(g.Request.Context(), req.CompetitorID, req.JudgeID, scores)
	if err != nil {
		var validationErr *scoring.ValidationError
		switch {
		case errors.As(err, &validationErr):
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: validationErr.Error()})
		case errors.Is(err, storage.ErrNotFound):
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, storage.ErrConflict):
			logging.Log.Warnf("VOTE: submission conflict for competitor %s: %v", req.CompetitorID, err)
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "vote could not be recorded due to concurrent updates, please retry"})
		default:
			logging.Log.Errorf("VOTE: failed to submit vote: %v", err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save vote"})
		}
		return
	}

	response := models.TransformCompetitorFromStorage(competitor)
	g.JSON(http.StatusOK, response)
}

// getVotesByCompetitor godoc
// @Summary Get the recorded votes for a competitor
// @Tags voting
// @Produce json
// @Param competitorId path string true "Competitor ID"
// @Success 200 {object} models.GetVotesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/vote/{competitorId} [get]
func (c *VotingController) getVotesByCompetitor(g *gin.Context) {
	competitorID := g.Param("competitorId")
	if competitorID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "competitorId is required"})
		return
	}

	competitor, err := c.competitors.Get(g.Request.Context(), competitorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "competitor not found"})
			return
		}
		logging.Log.Errorf("VOTE: failed to get competitor %s: %v", competitorID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not retrieve votes"})
		return
	}

	g.JSON(http.StatusOK, models.TransformVotesFromStorage(competitor))
}
