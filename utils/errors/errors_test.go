package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/rental-shop/constant"
	cerr "github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetCustomError(constant.ErrRentalConflict)

	assert.Equal(t, constant.ErrorTypeMessage[constant.ErrRentalConflict], err.Error())
	assert.Equal(t, "0006", err.ErrorCode())
	assert.Equal(t, http.StatusConflict, err.ErrorHTTPCode())
	assert.Equal(t, constant.ErrRentalConflict, err.ErrorType())
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("reserve: %w", cerr.SetCustomError(constant.ErrInsufficientStock))

	assert.True(t, cerr.IsType(wrapped, constant.ErrInsufficientStock))
	assert.False(t, cerr.IsType(wrapped, constant.ErrRentalConflict))
	assert.False(t, cerr.IsType(fmt.Errorf("plain"), constant.ErrInsufficientStock))
	assert.False(t, cerr.IsType(nil, constant.ErrInternal))
}

func TestEveryErrorTypeIsMapped(t *testing.T) {
	for errType := constant.Successful; errType <= constant.ErrLockNotObtained; errType++ {
		assert.NotEmpty(t, constant.ErrorTypeMessage[errType], "message for %d", errType)
		assert.NotEmpty(t, constant.ErrorTypeCode[errType], "code for %d", errType)
		assert.NotZero(t, constant.ErrorTypeHTTPCode[errType], "http code for %d", errType)
	}
}
