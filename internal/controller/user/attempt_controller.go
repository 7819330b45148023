package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ielts-mock/internal/controller"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/service"
)

type AttemptController struct {
	attemptService service.AttemptService
	scoreConverter service.ScoreConverterService
}

func NewAttemptController(as service.AttemptService, sc service.ScoreConverterService) *AttemptController {
	return &AttemptController{attemptService: as, scoreConverter: sc}
}

func (c *AttemptController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/attempts", c.ListAttempts)
	api.GET("/attempts/:attempt_id", c.GetAttemptDetails)
	api.GET("/bands/listening", c.ListeningBand)
}

// ListAttempts godoc
// @Summary List attempts
// @Description Students only see their own attempts.
// @Tags Attempts
// @Produce json
// @Security BearerAuth
// @Param status query string false "in_progress or completed"
// @Param graded query bool false "Filter on grading state"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var query dto.AttemptListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.BindError(ctx, "ListAttempts", err)
		return
	}
	attempts, err := c.attemptService.ListAttempts(ctx.Request.Context(), who, query)
	if err != nil {
		controller.RespondError(ctx, "ListAttempts", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttemptDetails godoc
// @Summary Get an attempt with its answers and writing submissions
// @Tags Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 403 {object} dto.ErrorResponse "Attempt belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) GetAttemptDetails(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	detail, err := c.attemptService.GetAttemptDetails(ctx.Request.Context(), who, attemptID)
	if err != nil {
		controller.RespondError(ctx, "GetAttemptDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// ListeningBand godoc
// @Summary Convert a listening raw score to a band
// @Tags Bands
// @Produce json
// @Security BearerAuth
// @Param correct query int true "Correct answers (0-40)"
// @Success 200 {object} dto.ListeningBandResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or out of range score"
// @Router /bands/listening [get]
func (c *AttemptController) ListeningBand(ctx *gin.Context) {
	correct, err := strconv.Atoi(ctx.Query("correct"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid correct format", Details: []string{"correct must be an integer"}})
		return
	}
	band, err := c.scoreConverter.ListeningBand(correct)
	if err != nil {
		controller.RespondError(ctx, "ListeningBand", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ListeningBandResponse{Correct: correct, Band: band})
}
