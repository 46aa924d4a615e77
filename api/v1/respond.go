package v1

import (
	"errors"
	"net/http"

	"github.com/assetdeploy/repositories"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps service errors onto the response envelope. Missing
// references become 404, protected deletes 409, everything else 500.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repositories.ErrStatusInUse),
		errors.Is(err, repositories.ErrDepartmentInUse):
		status = http.StatusConflict
	}

	ctx.JSON(status, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// respondBadRequest reports a validation failure
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": message,
	})
}
