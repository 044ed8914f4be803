package usecase

import "errors"

// ErrPersistence indicates an infrastructure/repository failure inside a
// notification use case.
var ErrPersistence = errors.New("notification use case: persistence error")
