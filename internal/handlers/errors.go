package handlers

import (
	stderrors "errors"

	"pos-service/internal/domain"
	"pos-service/internal/ledger"
	"pos-service/internal/scanner"
	"pos-service/pkg/errors"
)

// toStandardError maps service errors onto the API error taxonomy
func toStandardError(err error, barcode string) *errors.StandardError {
	var validationErr *domain.ValidationError
	var insufficient *domain.InsufficientStockError
	var storeErr *ledger.StoreError

	switch {
	case stderrors.As(err, &validationErr):
		return errors.NewStandardError(errors.CodeValidationError, validationErr.Message, validationErr.Field)
	case stderrors.As(err, &insufficient):
		return errors.NewInsufficientStock(insufficient.Shortages)
	case stderrors.Is(err, domain.ErrItemNotFound):
		return errors.NewItemNotFound(barcode)
	case stderrors.As(err, &storeErr):
		return errors.NewStoreFailure(string(storeErr.Kind)+" "+storeErr.Op, storeErr.Err)
	case stderrors.Is(err, scanner.ErrCameraBusy):
		return errors.NewCameraBusy()
	case stderrors.Is(err, scanner.ErrCameraUnavailable):
		return errors.NewCameraUnavailable(err)
	case stderrors.Is(err, scanner.ErrInvalidPurpose):
		return errors.NewInvalidRequest(err.Error(), nil)
	case stderrors.Is(err, scanner.ErrInvalidImage):
		return errors.NewInvalidRequest("Invalid image data", err.Error())
	default:
		return errors.NewInternalError("internal server error", err)
	}
}
