package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ielts-mock/internal/controller"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/service"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(ats service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: ats}
}

// RegisterRoutes expects a group already restricted to staff.
func (c *AdminTestController) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/tests", c.CreateTest)
	admin.PATCH("/tests/:test_id/publish", c.SetPublished)
	admin.POST("/listening-sections/:section_id/questions", c.AddListeningQuestion)
	admin.POST("/reading-passages/:passage_id/questions", c.AddReadingQuestion)
}

// CreateTest godoc
// @Summary (Admin) Create a new test with its content
// @Description Creates listening sections, reading passages, writing tasks and their questions in one transaction. Omitted question numbers continue the section's sequence.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestCreateDTO true "Test data"
// @Success 201 {object} dto.TestDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or question payload"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin CreateTest", err)
		return
	}
	created, err := c.adminTestService.CreateTest(ctx.Request.Context(), who, req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateTest", err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// AddListeningQuestion godoc
// @Summary (Admin) Append a question to a listening section
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section_id path int true "Listening section ID"
// @Param question body dto.QuestionCreateDTO true "Question"
// @Success 201 {object} dto.QuestionView
// @Failure 400 {object} dto.ErrorResponse "Invalid question or number already used"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /admin/listening-sections/{section_id}/questions [post]
func (c *AdminTestController) AddListeningQuestion(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	sectionID, ok := controller.ParseIDParam(ctx, "section_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin AddListeningQuestion", err)
		return
	}
	question, err := c.adminTestService.AddListeningQuestion(ctx.Request.Context(), who, sectionID, req)
	if err != nil {
		controller.RespondError(ctx, "Admin AddListeningQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// AddReadingQuestion godoc
// @Summary (Admin) Append a question to a reading passage
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passage_id path int true "Reading passage ID"
// @Param question body dto.QuestionCreateDTO true "Question"
// @Success 201 {object} dto.QuestionView
// @Failure 400 {object} dto.ErrorResponse "Invalid question or number already used"
// @Failure 404 {object} dto.ErrorResponse "Passage not found"
// @Router /admin/reading-passages/{passage_id}/questions [post]
func (c *AdminTestController) AddReadingQuestion(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	passageID, ok := controller.ParseIDParam(ctx, "passage_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin AddReadingQuestion", err)
		return
	}
	question, err := c.adminTestService.AddReadingQuestion(ctx.Request.Context(), who, passageID, req)
	if err != nil {
		controller.RespondError(ctx, "Admin AddReadingQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// SetPublished godoc
// @Summary (Admin) Publish or unpublish a test
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param body body dto.PublishTestDTO true "Publication flag"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/publish [patch]
func (c *AdminTestController) SetPublished(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.PublishTestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin SetPublished", err)
		return
	}
	details, err := c.adminTestService.SetPublished(ctx.Request.Context(), who, testID, *req.IsPublished)
	if err != nil {
		controller.RespondError(ctx, "Admin SetPublished", err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}
