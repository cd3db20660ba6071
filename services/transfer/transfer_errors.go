package transfer

import "fmt"

var (
	ErrInvalidInput       = fmt.Errorf("receiver phone, amount, and PIN are required")
	ErrInvalidAmount      = fmt.Errorf("amount must be greater than 0")
	ErrSenderNotFound     = fmt.Errorf("user not found")
	ErrReceiverNotFound   = fmt.Errorf("receiver not found, please check the phone number")
	ErrSelfTransfer       = fmt.Errorf("cannot send money to yourself")
	ErrInsufficientFunds  = fmt.Errorf("insufficient balance")
	ErrDailyLimitExceeded = fmt.Errorf("daily transfer limit exceeded")
	ErrReferenceConflict  = fmt.Errorf("could not allocate a unique transfer reference")
	ErrTransferNotFound   = fmt.Errorf("transfer not found")
	ErrTransferFailed     = fmt.Errorf("transfer failed, no money has been moved")
)

type TransferError struct {
	ErrorObj  error
	Reference string
	Other     []error
}

func (t *TransferError) Error() string {
	return t.ErrorObj.Error()
}

func (t *TransferError) Unwrap() error {
	return t.ErrorObj
}

func (t *TransferError) ErrorOut() string {
	return fmt.Sprintf("%v: %v", t.ErrorObj.Error(), t.Reference)
}

func NewTransferError(err error, reference string, e ...error) *TransferError {
	return &TransferError{
		ErrorObj:  err,
		Reference: reference,
		Other:     e,
	}
}
