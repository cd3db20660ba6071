package bank

import (
	"fmt"
	"time"

	db "github.com/PayRipple/PayRipple-Backend/db/sqlc"
	"github.com/google/uuid"
)

type BankAccountModel struct {
	ID                uuid.UUID `json:"id"`
	BankName          string    `json:"bankName"`
	AccountNumber     string    `json:"accountNumber"`
	IfscCode          string    `json:"ifscCode"`
	AccountHolderName string    `json:"accountHolderName"`
	IsVerified        bool      `json:"isVerified"`
	IsDefault         bool      `json:"isDefault"`
	CreatedAt         time.Time `json:"createdAt"`
}

// maskAccountNumber keeps only the last four digits visible.
func maskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return fmt.Sprintf("XXXXXX%s", number[len(number)-4:])
}

func ToBankAccountModel(account db.BankAccount) BankAccountModel {
	return BankAccountModel{
		ID:                account.ID,
		BankName:          account.BankName,
		AccountNumber:     maskAccountNumber(account.AccountNumber),
		IfscCode:          account.IfscCode,
		AccountHolderName: account.AccountHolderName,
		IsVerified:        account.IsVerified,
		IsDefault:         account.IsDefault,
		CreatedAt:         account.CreatedAt,
	}
}
