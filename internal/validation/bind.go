package validation

import (
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/marketloop/commerce-backend/internal/apperr"
)

// BindAndValidate binds the JSON body into `out` and runs schema validation.
// Malformed bodies and failed checks come back as Validation errors for the
// handler boundary to render.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return Struct(v, out)
}
