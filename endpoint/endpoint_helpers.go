package endpoint

import (
	"fmt"
	"strconv"

	"github.com/ariebrainware/voicenotes-api/middleware"
	"github.com/ariebrainware/voicenotes-api/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getDB fetches the request-scoped DB handle, responding with a server error
// when the database middleware did not run.
func getDB(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

// parseIDParam coerces a numeric path parameter into a positive integer.
// Coercion failure is a validation failure, not a server error.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		util.CallValidationError(c, []util.FieldError{{
			Path:    name,
			Message: fmt.Sprintf("Invalid %s", name),
		}})
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds the request body into obj. On failure it writes a 400 with
// per-field details and reports false so the handler can bail out before any
// domain logic runs.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		util.CallValidationError(c, util.ValidationDetails(err))
		return false
	}
	return true
}
