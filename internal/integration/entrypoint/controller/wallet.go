package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glaze-finance/backend/internal/application/usecase/wallet"
	domainerror "github.com/glaze-finance/backend/internal/domain/error"
	"github.com/glaze-finance/backend/internal/integration/entrypoint/dto"
)

// WalletController handles wallet endpoints.
type WalletController struct {
	listUseCase   *wallet.ListWalletsUseCase
	createUseCase *wallet.CreateWalletUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(listUseCase *wallet.ListWalletsUseCase, createUseCase *wallet.CreateWalletUseCase) *WalletController {
	return &WalletController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /wallets requests.
func (c *WalletController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), wallet.ListWalletsInput{
		UserID: ctx.Param("user_id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletListResponse(output.Wallets, output.TotalBalance))
}

// Create handles POST /wallets requests.
func (c *WalletController) Create(ctx *gin.Context) {
	var req dto.CreateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeWalletNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), wallet.CreateWalletInput{
		UserID:        ctx.Param("user_id"),
		Name:          req.Name,
		ColorStart:    req.ColorStart,
		ColorEnd:      req.ColorEnd,
		Icon:          req.Icon,
		AccountNumber: req.AccountNumber,
		Keywords:      req.Keywords,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(output.Wallet))
}
