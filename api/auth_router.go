package api

import (
	"net/http"

	"github.com/PayRipple/PayRipple-Backend/models"
	user_service "github.com/PayRipple/PayRipple-Backend/services/user"
	"github.com/PayRipple/PayRipple-Backend/services/wallet"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/gin-gonic/gin"
)

type Auth struct {
	server      *Server
	userService *user_service.UserService
}

func (a Auth) router(server *Server) {
	a.server = server
	walletService := wallet.NewWalletService(server.store, server.logger, server.config.WalletCurrency)
	a.userService = user_service.NewUserService(server.store, server.logger, walletService, server.pinGuard)

	serverGroup := server.router.Group("/api/auth")
	serverGroup.GET("test", a.testAuth)
	serverGroup.POST("send-otp", a.sendOTP)
	serverGroup.POST("verify-otp", a.verifyOTP)
	serverGroup.POST("register", a.register)
	serverGroup.POST("login", a.login)
	serverGroup.GET("profile", AuthenticatedMiddleware(), a.profile)
	serverGroup.POST("change-pin", AuthenticatedMiddleware(), a.changePIN)
}

func (a *Auth) testAuth(ctx *gin.Context) {
	dr := models.SuccessResponse{
		Success: true,
		Message: "Authentication API is active",
		Version: utils.REVISION,
	}

	ctx.JSON(http.StatusOK, dr)
}
