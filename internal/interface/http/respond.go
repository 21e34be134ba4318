package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
	"github.com/miftad456/task-management-sub001/pkg/response"
)

// fail maps an application error onto the HTTP envelope using the
// error's kind. Unknown errors become a generic 500.
func fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	msg := apperr.MessageOf(err)
	if status >= 500 {
		msg = "internal server error"
	}
	response.Error[any](c, status, msg, nil)
}
