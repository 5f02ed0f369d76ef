package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linikers/rocketstar/api/models"
	"github.com/linikers/rocketstar/api/transport"
	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/qrauth"
	"github.com/linikers/rocketstar/storage"
)

type QRCodeController struct {
	service *qrauth.Service
	storage storage.QRCodeStorage
}

func NewQRCodeController(service *qrauth.Service, s storage.QRCodeStorage) *QRCodeController {
	return &QRCodeController{
		service: service,
		storage: s,
	}
}

func (c *QRCodeController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/api/qrcodes/validate", c.validate)

	group := engine.Group("/api/qrcodes", transport.AdminAuthMiddleware())
	group.GET("", c.list)
	group.POST("", c.generate)
	group.DELETE("/:code", c.delete)
}

// @Security AdminToken
// generate godoc
// @Summary Generate a single-use QR access code
// @Description Issues a code valid for the requested number of hours, default 72
// @Tags qrcodes
// @Accept json
// @Produce json
// @Param request body models.GenerateQRCodeRequest true "Validity override, may be empty"
// @Success 201 {object} models.QRCodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/qrcodes [post]
func (c *QRCodeController) generate(g *gin.Context) {
	var req models.GenerateQRCodeRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "validityHours must be a positive number"})
		return
	}

	validityHours := qrauth.DefaultValidityHours
	if req.ValidityHours != nil {
		validityHours = *req.ValidityHours
	}

	qrCode, err := c.service.Issue(g.Request.Context(), validityHours)
	if err != nil {
		var validationErr *qrauth.ValidationError
		if errors.As(err, &validationErr) {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: validationErr.Error()})
			return
		}
		logging.Log.Errorf("QR: failed to generate code: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not generate qr code"})
		return
	}

	g.JSON(http.StatusCreated, models.TransformQRCodeFromStorage(qrCode, time.Now().UTC()))
}

// validate godoc
// @Summary Validate and consume a QR access code
// @Description Atomically redeems a code: a code validates exactly once, then reports already-used
// @Tags qrcodes
// @Accept json
// @Produce json
// @Param request body models.ValidateQRCodeRequest true "Code to redeem"
// @Success 200 {object} models.ValidateQRCodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Code not found"
// @Failure 409 {object} models.ErrorResponse "Code already used"
// @Failure 410 {object} models.ErrorResponse "Code expired"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/qrcodes/validate [post]
func (c *QRCodeController) validate(g *gin.Context) {
	var req models.ValidateQRCodeRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "code is required"})
		return
	}

	qrCode, err := c.service.ValidateAndConsume(g.Request.Context(), req.Code)
	if err != nil {
		var usedErr *qrauth.AlreadyUsedError
		var expiredErr *qrauth.ExpiredError
		var validationErr *qrauth.ValidationError
		switch {
		case errors.As(err, &usedErr):
			response := &models.ErrorResponse{Error: "qr code already used"}
			if !usedErr.UsedAt.IsZero() {
				usedAt := usedErr.UsedAt
				response.UsedAt = &usedAt
			}
			g.JSON(http.StatusConflict, response)
		case errors.As(err, &expiredErr):
			expiresAt := expiredErr.ExpiresAt
			g.JSON(http.StatusGone, &models.ErrorResponse{Error: "qr code expired", ExpiresAt: &expiresAt})
		case errors.As(err, &validationErr):
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: validationErr.Error()})
		case errors.Is(err, storage.ErrNotFound):
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "qr code not found"})
		default:
			logging.Log.Errorf("QR: failed to validate code: %v", err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not validate qr code"})
		}
		return
	}

	g.JSON(http.StatusOK, &models.ValidateQRCodeResponse{
		Status: storage.QRCodeStatusUsed,
		UsedAt: *qrCode.UsedAt,
	})
}

// @Security AdminToken
// list godoc
// @Summary List all QR codes with their derived status, newest first
// @Tags qrcodes
// @Produce json
// @Success 200 {array} models.QRCodeResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/qrcodes [get]
func (c *QRCodeController) list(g *gin.Context) {
	qrCodes, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("QR: failed to list codes: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not list qr codes"})
		return
	}

	sort.Slice(qrCodes, func(i, j int) bool {
		return qrCodes[i].CreatedAt.After(qrCodes[j].CreatedAt)
	})

	now := time.Now().UTC()
	responses := make([]models.QRCodeResponse, 0, len(qrCodes))
	for _, qr := range qrCodes {
		responses = append(responses, models.TransformQRCodeFromStorage(qr, now))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// delete godoc
// @Summary Delete a QR code by its value
// @Tags qrcodes
// @Produce json
// @Param code path string true "QR code"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/qrcodes/{code} [delete]
func (c *QRCodeController) delete(g *gin.Context) {
	code := g.Param("code")
	if err := c.storage.Delete(g.Request.Context(), code); err != nil {
		logging.Log.Errorf("QR: failed to delete code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete qr code"})
		return
	}
	logging.Log.Infof("QR: deleted code %s", code)
	g.JSON(http.StatusOK, gin.H{"deleted": code})
}
