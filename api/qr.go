package api

import (
	"errors"
	"net/http"

	"github.com/PayRipple/PayRipple-Backend/api/apistrings"
	models "github.com/PayRipple/PayRipple-Backend/api/models"
	basemodels "github.com/PayRipple/PayRipple-Backend/models"
	"github.com/PayRipple/PayRipple-Backend/services/qrpay"
	"github.com/PayRipple/PayRipple-Backend/services/transfer"
	user_service "github.com/PayRipple/PayRipple-Backend/services/user"
	"github.com/PayRipple/PayRipple-Backend/services/wallet"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/gin-gonic/gin"
)

type QR struct {
	server          *Server
	userService     *user_service.UserService
	transferService *transfer.TransferService
}

func (q QR) router(server *Server) {
	q.server = server
	walletService := wallet.NewWalletService(server.store, server.logger, server.config.WalletCurrency)
	q.userService = user_service.NewUserService(server.store, server.logger, walletService, server.pinGuard)
	q.transferService = transfer.NewTransferService(
		server.store,
		walletService,
		q.userService,
		server.logger,
		server.redis,
		dailyCap(server.config),
	)

	serverGroupV1 := server.router.Group("/api/v1/qr")
	serverGroupV1.POST("generate", AuthenticatedMiddleware(), q.generateQR)
	serverGroupV1.POST("pay", AuthenticatedMiddleware(), VerifiedMiddleware(), q.payQR)
}

func (q *QR) generateQR(ctx *gin.Context) {
	request := new(models.GenerateQRParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmountInput))
		return
	}
	if request.Amount.IsNegative() {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmountInput))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	dbUser, err := q.userService.GetByID(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	payload := qrpay.BuildPayload(dbUser, request.Amount, request.Description)
	image, err := qrpay.EncodeQR(payload)
	if err != nil {
		q.server.logger.Error("failed to encode QR: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("QR code generated", gin.H{
		"qr_code": image,
		"payload": payload,
	}))
}

func (q *QR) payQR(ctx *gin.Context) {
	request := new(models.PayQRParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidQRInput))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	payload, err := qrpay.ParsePayload(request.QRData)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidQRData))
		return
	}

	// A fixed-amount QR wins over the payer-entered amount.
	amount := payload.Amount
	if amount.IsZero() {
		amount = request.Amount
	}

	receipt, err := q.transferService.SendMoney(ctx, activeUser.UserID, transfer.SendMoneyRequest{
		ReceiverPhone: payload.ReceiverPhone(),
		Amount:        amount,
		Description:   payload.Description,
		PIN:           request.PIN,
	})
	if err != nil {
		q.respondQRError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Payment completed successfully", models.ToTransferResponse(receipt)))
}

func (q *QR) respondQRError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, transfer.ErrInvalidInput),
		errors.Is(err, transfer.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmountInput))
	case errors.Is(err, transfer.ErrSelfTransfer):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.SelfTransfer))
	case errors.Is(err, transfer.ErrInsufficientFunds),
		errors.Is(err, wallet.ErrInsufficientFunds):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InsufficientBalance))
	case errors.Is(err, transfer.ErrDailyLimitExceeded):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.DailyLimitExceeded))
	case errors.Is(err, transfer.ErrReceiverNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ReceiverNotFound))
	case errors.Is(err, user_service.ErrInvalidPIN):
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.IncorrectPhonePin))
	case errors.Is(err, user_service.ErrPINLocked):
		ctx.JSON(http.StatusTooManyRequests, basemodels.NewError(apistrings.PINLocked))
	default:
		q.server.logger.Error("QR payment failed: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.TransferFailed))
	}
}
