package sales

import "errors"

var (
	ErrTransactionNotFound = errors.New("sales transaction not found")
	ErrUnknownClient       = errors.New("unknown client code")
	ErrUnknownProduct      = errors.New("unknown product code")
)
