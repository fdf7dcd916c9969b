package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNoPermission     = http.StatusForbidden
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusConflict         = http.StatusConflict
	ErrStatusNotImplemented   = http.StatusNotImplemented
	ErrStatusBadGateway       = http.StatusBadGateway
	ErrStatusEmailAlreadyUsed = http.StatusBadRequest
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrUnauthorized            = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrExpiredToken            = errors.New("Token has expired")
	ErrConflict                = errors.New("Conflicting record found")
	ErrInvalidAmount           = errors.New("El monto debe ser mayor a 0")
	ErrTransactionNotFound     = errors.New("Transacción no encontrada")
	ErrInvalidDepartment       = errors.New("Departamento no válido")
	ErrAddressNotFound         = errors.New("Dirección no encontrada")
	ErrNoApprovalURL           = errors.New("No se encontró URL de aprobación")
	ErrCreditCardNotSupported  = errors.New("Pago con tarjeta de crédito no implementado aún")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusUnauthorized,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrUnauthorized:            ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:        ErrStatusEmailAlreadyUsed,
	ErrExpiredToken:            ErrStatusUnauthorized,
	ErrConflict:                ErrStatusConflict,
	ErrInvalidAmount:           ErrStatusClient,
	ErrTransactionNotFound:     ErrStatusNotFound,
	ErrInvalidDepartment:       ErrStatusClient,
	ErrAddressNotFound:         ErrStatusNotFound,
	ErrNoApprovalURL:           ErrStatusBadGateway,
	ErrCreditCardNotSupported:  ErrStatusNotImplemented,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
