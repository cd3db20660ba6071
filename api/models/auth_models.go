package models

import "time"

type UserRegisterParams struct {
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	PIN         string `json:"pin" binding:"required,pin"`
}

type UserLoginParams struct {
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
	PIN         string `json:"pin" binding:"required,pin"`
}

type SendOTPParams struct {
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
}

type VerifyOTPParams struct {
	PhoneNumber string `json:"phone_number" binding:"required,e164"`
	Code        string `json:"code" binding:"required,len=6,numeric"`
}

type ChangePINParams struct {
	OldPIN string `json:"old_pin" binding:"required,pin"`
	NewPIN string `json:"new_pin" binding:"required,pin"`
}

type UserResponse struct {
	ID          ID        `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}
