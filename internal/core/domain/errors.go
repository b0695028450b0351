package domain

import "errors"

var ErrInvalidInput = errors.New("invalid input")
var ErrUserNotFound = errors.New("user not found")
var ErrProductNotFound = errors.New("product not found")
var ErrPurchaseNotFound = errors.New("purchase not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInsufficientStock = errors.New("insufficient stock")
