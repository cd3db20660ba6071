package api

import (
	"errors"
	"net/http"

	"github.com/PayRipple/PayRipple-Backend/api/apistrings"
	models "github.com/PayRipple/PayRipple-Backend/api/models"
	basemodels "github.com/PayRipple/PayRipple-Backend/models"
	"github.com/PayRipple/PayRipple-Backend/services/bank"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Bank struct {
	server      *Server
	bankService *bank.BankService
}

func (b Bank) router(server *Server) {
	b.server = server
	b.bankService = bank.NewBankService(server.store, server.logger)

	serverGroupV1 := server.router.Group("/api/v1/bank-accounts")
	serverGroupV1.POST("", AuthenticatedMiddleware(), b.addAccount)
	serverGroupV1.GET("", AuthenticatedMiddleware(), b.listAccounts)
	serverGroupV1.PUT(":id/default", AuthenticatedMiddleware(), b.setDefault)
	serverGroupV1.DELETE(":id", AuthenticatedMiddleware(), b.deleteAccount)
}

func (b *Bank) addAccount(ctx *gin.Context) {
	request := new(models.AddBankAccountParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidBankInput))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	account, err := b.bankService.AddAccount(ctx, activeUser.UserID, bank.AddAccountParams{
		BankName:          request.BankName,
		AccountNumber:     request.AccountNumber,
		IfscCode:          request.IfscCode,
		AccountHolderName: request.AccountHolderName,
	})
	if err != nil {
		if errors.Is(err, bank.ErrBankAccountExists) {
			ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.DuplicateBank))
			return
		}
		b.server.logger.Error("failed to add bank account: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Bank account linked successfully", bank.ToBankAccountModel(account)))
}

func (b *Bank) listAccounts(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	accounts, err := b.bankService.ListAccounts(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	response := make([]bank.BankAccountModel, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, bank.ToBankAccountModel(account))
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Bank accounts fetched successfully", response))
}

func (b *Bank) setDefault(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidBankInput))
		return
	}

	account, err := b.bankService.SetDefault(ctx, activeUser.UserID, accountID)
	if err != nil {
		if errors.Is(err, bank.ErrBankAccountNotFound) || errors.Is(err, bank.ErrNotAccountOwner) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.BankAccountNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Default bank account updated", bank.ToBankAccountModel(account)))
}

func (b *Bank) deleteAccount(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidBankInput))
		return
	}

	if err := b.bankService.DeleteAccount(ctx, activeUser.UserID, accountID); err != nil {
		if errors.Is(err, bank.ErrBankAccountNotFound) || errors.Is(err, bank.ErrNotAccountOwner) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.BankAccountNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Bank account removed", nil))
}
