package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PayRipple/PayRipple-Backend/api/apistrings"
	models "github.com/PayRipple/PayRipple-Backend/api/models"
	basemodels "github.com/PayRipple/PayRipple-Backend/models"
	"github.com/PayRipple/PayRipple-Backend/services/history"
	"github.com/PayRipple/PayRipple-Backend/services/transfer"
	user_service "github.com/PayRipple/PayRipple-Backend/services/user"
	"github.com/PayRipple/PayRipple-Backend/services/wallet"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/gin-gonic/gin"
)

type Transfer struct {
	server          *Server
	transferService *transfer.TransferService
	historyService  *history.HistoryService
	userService     *user_service.UserService
}

func (t Transfer) router(server *Server) {
	t.server = server
	walletService := wallet.NewWalletService(server.store, server.logger, server.config.WalletCurrency)
	t.userService = user_service.NewUserService(server.store, server.logger, walletService, server.pinGuard)
	t.transferService = transfer.NewTransferService(
		server.store,
		walletService,
		t.userService,
		server.logger,
		server.redis,
		dailyCap(server.config),
	)
	t.historyService = history.NewHistoryService(server.store, server.logger)

	serverGroupV1 := server.router.Group("/api/v1/p2p")
	serverGroupV1.POST("send", AuthenticatedMiddleware(), VerifiedMiddleware(), t.sendMoney)
	serverGroupV1.GET("history", AuthenticatedMiddleware(), t.getHistory)
	serverGroupV1.GET("transfers/:reference", AuthenticatedMiddleware(), t.getTransfer)
}

func (t *Transfer) sendMoney(ctx *gin.Context) {
	request := new(models.SendMoneyParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTransferInput))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	receipt, err := t.transferService.SendMoney(ctx, activeUser.UserID, transfer.SendMoneyRequest{
		ReceiverPhone: request.ReceiverPhone,
		Amount:        request.Amount,
		Description:   request.Description,
		PIN:           request.PIN,
	})
	if err != nil {
		t.respondTransferError(ctx, err)
		return
	}

	t.sendReceiptEmail(ctx, activeUser.UserID, receipt)

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transfer completed successfully", models.ToTransferResponse(receipt)))
}

func (t *Transfer) respondTransferError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, transfer.ErrInvalidInput),
		errors.Is(err, transfer.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTransferInput))
	case errors.Is(err, transfer.ErrSelfTransfer):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.SelfTransfer))
	case errors.Is(err, transfer.ErrInsufficientFunds),
		errors.Is(err, wallet.ErrInsufficientFunds):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InsufficientBalance))
	case errors.Is(err, transfer.ErrDailyLimitExceeded):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.DailyLimitExceeded))
	case errors.Is(err, wallet.ErrWalletInactive):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.WalletInactive))
	case errors.Is(err, transfer.ErrReceiverNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ReceiverNotFound))
	case errors.Is(err, transfer.ErrSenderNotFound):
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
	case errors.Is(err, user_service.ErrInvalidPIN):
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IncorrectPhonePin))
	case errors.Is(err, user_service.ErrPINLocked):
		ctx.JSON(http.StatusTooManyRequests, basemodels.NewError(apistrings.PINLocked))
	default:
		t.server.logger.Error("transfer failed: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.TransferFailed))
	}
}

// sendReceiptEmail delivers the transfer receipt to the sender's email if
// they registered one. Delivery failures never affect the response.
func (t *Transfer) sendReceiptEmail(ctx *gin.Context, senderID int64, receipt *transfer.TransferReceipt) {
	dbUser, err := t.userService.GetByID(ctx, senderID)
	if err != nil || !dbUser.Email.Valid || dbUser.Email.String == "" {
		return
	}
	if err := t.server.mail.SendTransferReceipt(dbUser.Email.String, receipt.ReceiverName, receipt.ReferenceID, receipt.Amount); err != nil {
		t.server.logger.WithField("user_id", senderID).Warn("failed to send receipt email: ", err)
	}
}

func (t *Transfer) getTransfer(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	row, err := t.transferService.GetByReference(ctx, activeUser.UserID, ctx.Param("reference"))
	if err != nil {
		if errors.Is(err, transfer.ErrTransferNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.TransferNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transfer fetched successfully", models.ToTransferRecord(row)))
}

func (t *Transfer) getHistory(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	direction := ctx.DefaultQuery("direction", history.DirectionAll)

	items, pagination, err := t.historyService.ListTransfers(ctx, activeUser.UserID, page, pageSize, direction)
	if err != nil {
		if errors.Is(err, history.ErrInvalidDirection) {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidDirection))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transfer history fetched successfully", models.ListResponse{
		Items:      items,
		Pagination: pagination,
	}))
}
