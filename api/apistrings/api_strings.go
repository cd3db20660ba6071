package apistrings

const (
	/// Basic User Related Strings
	UserNotFound      = "user or account does not exist"
	UserNotVerified   = "you have not verified your phone number yet"
	UserAlreadyExists = "phone number already registered"
	InvalidPhone      = "invalid phone number, please use a standard phone number"
	InvalidAuthInput  = "please enter a valid phone number and PIN"
	InvalidOTPInput   = "please enter a valid phone number and code"
	IncorrectPhonePin = "incorrect phone number or PIN"
	IncorrectOTP      = "invalid or expired verification code"
	PhoneNotVerified  = "phone number not verified, request a new code"
	PINLocked         = "too many failed PIN attempts, try again later"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Wallet Related Strings
	UserNoWallet        = "user does not have a wallet created"
	WalletInactive      = "wallet is deactivated"
	InvalidAmountInput  = "check 'amount' key, invalid request"
	InvalidTopUpInput   = "check 'amount' or 'bank_account_id' keys, invalid request"
	InsufficientBalance = "insufficient balance"

	/// Transfer Related Strings
	InvalidTransferInput = "check 'receiver_phone', 'amount' or 'pin' keys, invalid request"
	ReceiverNotFound     = "receiver not found, please check the phone number"
	SelfTransfer         = "cannot send money to yourself"
	DailyLimitExceeded   = "daily transfer limit exceeded"
	TransferFailed       = "transfer failed, no money has been moved"
	TransferNotFound     = "transfer not found"
	TransactionNotFound  = "transaction not found"
	InvalidDirection     = "direction must be one of all, sent, received"

	/// Bank Account Related Strings
	InvalidBankInput    = "check bank account details, invalid request"
	BankAccountNotFound = "bank account not found"
	DuplicateBank       = "bank account already linked"

	/// QR Related Strings
	InvalidQRInput = "check 'qr_data' key, invalid request"
	InvalidQRData  = "QR code is not a valid payment request"
)
