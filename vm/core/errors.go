package core

import "errors"

var (
	// ErrInternal raised on any unexpected error due to internal state or environment.
	// Transactions are not applied if ErrInternal is raised.
	ErrInternal = errors.New("internal")
	// ErrMalformed raised if transaction can't be interpreted by the runtime.
	ErrMalformed = errors.New("malformed tx")
	// ErrUnknownProgram raised if instruction is addressed to the program that is not registered.
	ErrUnknownProgram = errors.New("unknown program")
	// ErrComputeBudgetExceeded raised if transaction consumed more compute units than allowed.
	ErrComputeBudgetExceeded = errors.New("compute budget exceeded")
	// ErrReadonlyDataModified raised if program modified data of the account that wasn't writable.
	ErrReadonlyDataModified = errors.New("instruction modified data of a read-only account")
	// ErrExternalAccountDataModified raised if program modified data of the account it doesn't own.
	ErrExternalAccountDataModified = errors.New("instruction modified data of an account it does not own")
	// ErrAccountDataSizeChanged raised if program changed the length of the account data.
	ErrAccountDataSizeChanged = errors.New("instruction changed the size of the account data")

	// ErrInvalidInstructionData raised by programs if instruction data can't be interpreted.
	ErrInvalidInstructionData = errors.New("invalid instruction data")
	// ErrInvalidAccountData raised by programs if account data has unexpected shape.
	ErrInvalidAccountData = errors.New("invalid account data for instruction")
	// ErrNotEnoughAccountKeys raised by programs if instruction lists fewer accounts than required.
	ErrNotEnoughAccountKeys = errors.New("insufficient account keys for instruction")
	// ErrUninitialized raised by programs if account was expected to be initialized.
	ErrUninitialized = errors.New("instruction requires an initialized account")
	// ErrArithmeticOverflow raised by programs if an update would overflow the stored value.
	ErrArithmeticOverflow = errors.New("arithmetic overflowed")
	// ErrInstructionMissing raised if instruction data is too short to hold a discriminator.
	ErrInstructionMissing = errors.New("instruction discriminator not provided")
	// ErrInstructionFallbackNotFound raised if discriminator doesn't match any known instruction.
	ErrInstructionFallbackNotFound = errors.New("fallback functions are not supported")
)
