package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BusinessError is a failure the frontend itself decided on, as opposed to one
// relayed from a backend service.
type BusinessError struct {
	Code   string
	Status int
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Status: http.StatusInternalServerError}
}

func ErrBusinessStatus(code string, status int) error {
	return BusinessError{Code: code, Status: status}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Business writes err with its own status when it is a BusinessError.
// It reports false for any other error so the caller can map it.
func Business(c *gin.Context, err error, message string) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}
	status := be.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	Write(c, status, be.Code, message)
	return true
}
