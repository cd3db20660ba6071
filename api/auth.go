package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PayRipple/PayRipple-Backend/api/apistrings"
	models "github.com/PayRipple/PayRipple-Backend/api/models"
	basemodels "github.com/PayRipple/PayRipple-Backend/models"
	user_service "github.com/PayRipple/PayRipple-Backend/services/user"
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func (a *Auth) sendOTP(ctx *gin.Context) {
	request := new(models.SendOTPParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidPhone))
		return
	}

	code := utils.GenerateOTP()
	if err := a.server.redis.StoreOTP(ctx, request.PhoneNumber, code); err != nil {
		a.server.logger.Error("failed to store OTP: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	message := fmt.Sprintf("Your PayRipple verification code is %s. It expires in 10 minutes.", code)
	if err := a.server.sms.SendSMS(request.PhoneNumber, message); err != nil {
		a.server.logger.Error("failed to send OTP SMS: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Verification code sent", nil))
}

func (a *Auth) verifyOTP(ctx *gin.Context) {
	request := new(models.VerifyOTPParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidOTPInput))
		return
	}

	ok, err := a.server.redis.CheckOTP(ctx, request.PhoneNumber, request.Code)
	if err != nil {
		a.server.logger.Error("failed to check OTP: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}
	if !ok {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.IncorrectOTP))
		return
	}

	// The code is consumed on success. Existing users are logged straight
	// in, new phones get a short-lived verified marker so registration does
	// not require a second code.
	dbUser, err := a.userService.GetByPhone(ctx, request.PhoneNumber)
	if err != nil {
		if !errors.Is(err, user_service.ErrUserNotFound) {
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
			return
		}
		if err := a.server.redis.MarkPhoneVerified(ctx, request.PhoneNumber); err != nil {
			a.server.logger.Error("failed to mark phone verified: ", err)
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
			return
		}
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("Phone number verified", gin.H{
			"is_new_user": true,
		}))
		return
	}

	if !dbUser.IsVerified {
		dbUser, err = a.server.store.SetUserVerified(ctx, dbUser.ID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
			return
		}
	}

	token, err := TokenController.CreateToken(utils.TokenObject{
		UserID:   dbUser.ID,
		Phone:    dbUser.PhoneNumber,
		Verified: dbUser.IsVerified,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Phone number verified", gin.H{
		"is_new_user": false,
		"token":       token,
		"user":        models.ToUserResponse(dbUser),
	}))
}

func (a *Auth) register(ctx *gin.Context) {
	request := new(models.UserRegisterParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAuthInput))
		return
	}

	ok, err := a.server.redis.ConsumePhoneVerified(ctx, request.PhoneNumber)
	if err != nil {
		a.server.logger.Error("failed to check phone verification: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}
	if !ok {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.PhoneNotVerified))
		return
	}

	dbUser, err := a.userService.CreateUserWithWallet(ctx, request.PhoneNumber, request.Name, request.Email, request.PIN)
	if err != nil {
		if errors.Is(err, user_service.ErrUserAlreadyExists) {
			ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.UserAlreadyExists))
			return
		}
		a.server.logger.Error("failed to register user: ", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	token, err := TokenController.CreateToken(utils.TokenObject{
		UserID:   dbUser.ID,
		Phone:    dbUser.PhoneNumber,
		Verified: dbUser.IsVerified,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Registration successful", gin.H{
		"token": token,
		"user":  models.ToUserResponse(dbUser),
	}))
}

func (a *Auth) login(ctx *gin.Context) {
	request := new(models.UserLoginParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAuthInput))
		return
	}

	dbUser, err := a.userService.GetByPhone(ctx, request.PhoneNumber)
	if err != nil {
		if errors.Is(err, user_service.ErrUserNotFound) {
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.IncorrectPhonePin))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := a.userService.VerifyPIN(dbUser, request.PIN); err != nil {
		if errors.Is(err, user_service.ErrPINLocked) {
			ctx.JSON(http.StatusTooManyRequests, basemodels.NewError(apistrings.PINLocked))
			return
		}
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.IncorrectPhonePin))
		return
	}

	token, err := TokenController.CreateToken(utils.TokenObject{
		UserID:   dbUser.ID,
		Phone:    dbUser.PhoneNumber,
		Verified: dbUser.IsVerified,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Login successful", gin.H{
		"token": token,
		"user":  models.ToUserResponse(dbUser),
	}))
}

func (a *Auth) profile(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	dbUser, err := a.userService.GetByID(ctx, activeUser.UserID)
	if err != nil {
		if errors.Is(err, user_service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Profile fetched successfully", models.ToUserResponse(dbUser)))
}

func (a *Auth) changePIN(ctx *gin.Context) {
	request := new(models.ChangePINParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAuthInput))
		return
	}

	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	dbUser, err := a.userService.GetByID(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := a.userService.VerifyPIN(dbUser, request.OldPIN); err != nil {
		if errors.Is(err, user_service.ErrPINLocked) {
			ctx.JSON(http.StatusTooManyRequests, basemodels.NewError(apistrings.PINLocked))
			return
		}
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.IncorrectPhonePin))
		return
	}

	if err := a.userService.UpdatePIN(ctx, dbUser.ID, request.NewPIN); err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("PIN updated successfully", nil))
}
