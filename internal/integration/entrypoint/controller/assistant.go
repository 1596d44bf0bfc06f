package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glaze-finance/backend/internal/application/usecase/assistant"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

// AssistantController handles text extraction and chat endpoints.
type AssistantController struct {
	parseUseCase *assistant.ParseTransactionUseCase
	chatUseCase  *assistant.ChatUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(parseUseCase *assistant.ParseTransactionUseCase, chatUseCase *assistant.ChatUseCase) *AssistantController {
	return &AssistantController{
		parseUseCase: parseUseCase,
		chatUseCase:  chatUseCase,
	}
}

// Parse handles POST /assistant/parse requests.
func (c *AssistantController) Parse(ctx *gin.Context) {
	var req dto.ParseTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.parseUseCase.Execute(ctx.Request.Context(), assistant.ParseTransactionInput{
		UserID: ctx.Param("user_id"),
		Text:   req.Text,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCandidateResponse(output.Candidate))
}

// Chat handles POST /assistant/chat requests.
func (c *AssistantController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), assistant.ChatInput{
		UserID:  ctx.Param("user_id"),
		Message: req.Message,
		Context: req.Context,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Reply: output.Reply})
}

func invalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  string(domainerror.ErrCodeEmptyInput),
	})
}
