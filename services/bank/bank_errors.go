package bank

import "fmt"

var (
	ErrBankAccountNotFound = fmt.Errorf("bank account not found")
	ErrBankAccountExists   = fmt.Errorf("bank account already exists")
	ErrNotAccountOwner     = fmt.Errorf("bank account does not belong to this user")
)
