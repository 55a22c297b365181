package errors

import "fmt"

var (
	ErrStorage      = fmt.Errorf("could not save")
	ErrUnknownCodec = fmt.Errorf("unknown store codec")

	ErrNotNewAdmission = fmt.Errorf("fresh connect is exclusively for newly admitted students")
	ErrInvalidProfile  = fmt.Errorf("please provide all details to start connecting")

	ErrUserNotFound  = fmt.Errorf("user not found")
	ErrGroupNotFound = fmt.Errorf("group not found")

	ErrEmptyMessage   = fmt.Errorf("message text is empty")
	ErrMessageTooLong = fmt.Errorf("message text is too long")

	ErrListingsDisabled = fmt.Errorf("listing provider is not configured")
)
