package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ielts-mock/internal/controller"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/service"
	"github.com/rs/zerolog/log"
)

// GradingController is the teacher facing side of attempts.
type GradingController struct {
	gradingService service.GradingService
	attemptService service.AttemptService
}

func NewGradingController(gs service.GradingService, as service.AttemptService) *GradingController {
	return &GradingController{gradingService: gs, attemptService: as}
}

// RegisterRoutes mounts the grading routes. staff is the middleware chain that
// restricts a route to teachers and admins.
func (c *GradingController) RegisterRoutes(api *gin.RouterGroup, staff ...gin.HandlerFunc) {
	chain := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, staff...), h)
	}
	api.POST("/attempts/:attempt_id/grade", chain(c.GradeAttempt)...)
	api.GET("/admin/attempts/ungraded", chain(c.ListUngraded)...)
}

// GradeAttempt godoc
// @Summary (Teacher) Grade an attempt
// @Description Updates only the supplied bands. Bands are clamped to 0-9; the overall band is set once all three are present.
// @Tags Grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Param grade body dto.GradeAttemptDTO true "Bands and comment"
// @Success 200 {object} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "No band supplied"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id}/grade [post]
func (c *GradingController) GradeAttempt(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.GradeAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "GradeAttempt", err)
		return
	}
	summary, err := c.gradingService.Grade(ctx.Request.Context(), who, attemptID, req)
	if err != nil {
		controller.RespondError(ctx, "GradeAttempt", err)
		return
	}
	log.Info().Uint("attemptID", attemptID).Uint("gradedBy", who.UserID).Msg("GradeAttempt: Attempt graded")
	ctx.JSON(http.StatusOK, summary)
}

// ListUngraded godoc
// @Summary (Teacher) List completed attempts waiting for grading
// @Tags Grading
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Router /admin/attempts/ungraded [get]
func (c *GradingController) ListUngraded(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	attempts, err := c.attemptService.ListUngraded(ctx.Request.Context(), who)
	if err != nil {
		controller.RespondError(ctx, "ListUngraded", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
