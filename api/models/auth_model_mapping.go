package models

import (
	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
)

func ToUserResponse(dbUser db.User) UserResponse {
	return UserResponse{
		ID:          ID(dbUser.ID),
		PhoneNumber: dbUser.PhoneNumber,
		Name:        dbUser.Name.String,
		Email:       dbUser.Email.String,
		IsVerified:  dbUser.IsVerified,
		CreatedAt:   dbUser.CreatedAt,
	}
}
