package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ielts-mock/internal/controller"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/model"
	"github.com/lshigami/ielts-mock/internal/service"
)

// SectionController exposes the start/submit protocol of the three sections.
type SectionController struct {
	sectionService service.SectionService
}

func NewSectionController(ss service.SectionService) *SectionController {
	return &SectionController{sectionService: ss}
}

func (c *SectionController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/listening/start", c.StartListening)
	api.POST("/listening/submit", c.SubmitListening)
	api.POST("/reading/start", c.StartReading)
	api.POST("/reading/submit", c.SubmitReading)
	api.POST("/writing/start", c.StartWriting)
	api.POST("/writing/submit", c.SubmitWriting)
}

// StartListening godoc
// @Summary Start the listening section
// @Description Creates the attempt on first call. Repeated calls return the original start time. The time limit is the total audio duration plus 10 minutes transfer time.
// @Tags Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartSectionDTO true "Test to start"
// @Success 200 {object} dto.SectionStartResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Section already submitted"
// @Router /listening/start [post]
func (c *SectionController) StartListening(ctx *gin.Context) {
	c.start(ctx, model.SectionListening)
}

// StartReading godoc
// @Summary Start the reading section
// @Description Requires the attempt created by the listening start. Time limit is 60 minutes.
// @Tags Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartSectionDTO true "Test to start"
// @Success 200 {object} dto.SectionStartResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Listening not started or section already submitted"
// @Router /reading/start [post]
func (c *SectionController) StartReading(ctx *gin.Context) {
	c.start(ctx, model.SectionReading)
}

// StartWriting godoc
// @Summary Start the writing section
// @Description Requires the attempt created by the listening start. Time limit is 60 minutes.
// @Tags Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartSectionDTO true "Test to start"
// @Success 200 {object} dto.SectionStartResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Listening not started or section already submitted"
// @Router /writing/start [post]
func (c *SectionController) StartWriting(ctx *gin.Context) {
	c.start(ctx, model.SectionWriting)
}

func (c *SectionController) start(ctx *gin.Context, kind model.SectionKind) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var req dto.StartSectionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Start "+string(kind), err)
		return
	}
	resp, err := c.sectionService.Start(ctx.Request.Context(), who, kind, req.TestID)
	if err != nil {
		controller.RespondError(ctx, "Start "+string(kind), err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitListening godoc
// @Summary Submit listening answers
// @Description One-shot. Answers are keyed by question number; unknown numbers are ignored and counted.
// @Tags Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAnswersDTO true "Answers by question number"
// @Success 200 {object} dto.SectionSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid answers or time_spent"
// @Failure 409 {object} dto.ErrorResponse "Section not started, already submitted or attempt completed"
// @Router /listening/submit [post]
func (c *SectionController) SubmitListening(ctx *gin.Context) {
	c.submitAnswers(ctx, model.SectionListening)
}

// SubmitReading godoc
// @Summary Submit reading answers
// @Description One-shot. time_spent may not exceed 3600 seconds.
// @Tags Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAnswersDTO true "Answers by question number"
// @Success 200 {object} dto.SectionSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid answers or time_spent"
// @Failure 409 {object} dto.ErrorResponse "Section not started, already submitted or attempt completed"
// @Router /reading/submit [post]
func (c *SectionController) SubmitReading(ctx *gin.Context) {
	c.submitAnswers(ctx, model.SectionReading)
}

func (c *SectionController) submitAnswers(ctx *gin.Context, kind model.SectionKind) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var req dto.SubmitAnswersDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Submit "+string(kind), err)
		return
	}
	resp, err := c.sectionService.SubmitAnswers(ctx.Request.Context(), who, kind, req)
	if err != nil {
		controller.RespondError(ctx, "Submit "+string(kind), err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitWriting godoc
// @Summary Submit both writing tasks
// @Description One-shot. At least one task must be answered; a blank task is not stored and is reported as a warning.
// @Tags Sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitWritingDTO true "Task texts"
// @Success 200 {object} dto.SectionSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid time_spent or test without two writing tasks"
// @Failure 409 {object} dto.ErrorResponse "Section not started, already submitted or attempt completed"
// @Router /writing/submit [post]
func (c *SectionController) SubmitWriting(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var req dto.SubmitWritingDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Submit writing", err)
		return
	}
	resp, err := c.sectionService.SubmitWriting(ctx.Request.Context(), who, req)
	if err != nil {
		controller.RespondError(ctx, "Submit writing", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
