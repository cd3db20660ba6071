package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PayRipple/PayRipple-Backend/api/apistrings"
	models "github.com/PayRipple/PayRipple-Backend/api/models"
	basemodels "github.com/PayRipple/PayRipple-Backend/models"
	"github.com/PayRipple/PayRipple-Backend/services/bank"
	"github.com/PayRipple/PayRipple-Backend/services/history"
	"github.com/PayRipple/PayRipple-Backend/services/transfer"
	user_service "github.com/PayRipple/PayRipple-Backend/services/user"
	"github.com/PayRipple/PayRipple-Backend/services/wallet"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	server          *Server
	walletService   *wallet.WalletService
	transferService *transfer.TransferService
	historyService  *history.HistoryService
	bankService     *bank.BankService
}

func (w Wallet) router(server *Server) {
	w.server = server
	w.walletService = wallet.NewWalletService(server.store, server.logger, server.config.WalletCurrency)
	userService := user_service.NewUserService(server.store, server.logger, w.walletService, server.pinGuard)
	w.transferService = transfer.NewTransferService(
		server.store,
		w.walletService,
		userService,
		server.logger,
		server.redis,
		dailyCap(server.config),
	)
	w.historyService = history.NewHistoryService(server.store, server.logger)
	w.bankService = bank.NewBankService(server.store, server.logger)

	serverGroupV1 := server.router.Group("/api/v1/wallet")
	serverGroupV1.GET("balance", AuthenticatedMiddleware(), w.getBalance)
	serverGroupV1.POST("add-money", AuthenticatedMiddleware(), VerifiedMiddleware(), w.addMoney)
	serverGroupV1.GET("transactions", AuthenticatedMiddleware(), w.getTransactions)
	serverGroupV1.GET("transactions/:reference", AuthenticatedMiddleware(), w.getTransaction)
}

func dailyCap(c *utils.Config) decimal.Decimal {
	cap, err := decimal.NewFromString(c.DailyTransferCap)
	if err != nil {
		return decimal.Zero
	}
	return cap
}

func (w *Wallet) getBalance(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	userWallet, err := w.walletService.GetByUserID(ctx, activeUser.UserID)
	if err != nil {
		if errors.Is(err, wallet.ErrWalletNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet fetched successfully", wallet.ToWalletModel(userWallet)))
}

func (w *Wallet) addMoney(ctx *gin.Context) {
	request := new(models.AddMoneyParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTopUpInput))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	accountID, err := uuid.Parse(request.BankAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTopUpInput))
		return
	}

	bankAccount, err := w.bankService.GetOwnedAccount(ctx, activeUser.UserID, accountID)
	if err != nil {
		if errors.Is(err, bank.ErrBankAccountNotFound) || errors.Is(err, bank.ErrNotAccountOwner) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.BankAccountNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	receipt, err := w.transferService.AddMoney(ctx, activeUser.UserID, request.Amount, bankAccount)
	if err != nil {
		if errors.Is(err, transfer.ErrInvalidAmount) {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmountInput))
			return
		}
		w.server.logger.Error("add money failed: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Money added successfully", receipt))
}

func (w *Wallet) getTransactions(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	items, pagination, err := w.historyService.ListTransactions(ctx, activeUser.UserID, page, pageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transactions fetched successfully", models.ListResponse{
		Items:      items,
		Pagination: pagination,
	}))
}

func (w *Wallet) getTransaction(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	item, err := w.historyService.GetTransactionByReference(ctx, activeUser.UserID, ctx.Param("reference"))
	if err != nil {
		if errors.Is(err, history.ErrTransactionNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.TransactionNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transaction fetched successfully", item))
}
