package usecase

import "errors"

// ErrPersistence indicates an infrastructure/repository failure inside a use
// case. Callers surface it to clients as an opaque failure; the detail stays
// in server logs.
var ErrPersistence = errors.New("chat use case: persistence error")
