package handler

import (
	"net/http"
	"reflect"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "JSON inválido: " + err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"code": "VALIDATION_ERROR", "message": "Campos inválidos", "fields": fields})
		return false
	}
	return true
}

// parseIDParam parses the :id path segment as UUID.
// Returns uuid.Nil and writes the 400 response when malformed.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "ID inválido"})
		return uuid.Nil, false
	}
	return id, true
}

// respondErro renders a service error: domain errors map to their HTTP status,
// anything else is deferred to the ErrorHandler middleware as a 500.
func respondErro(c *gin.Context, err error) {
	if e, ok := apperr.From(err); ok && e.Kind != apperr.KindInternal {
		c.JSON(e.HTTPStatus(), gin.H{"code": e.Code, "message": e.Message})
		return
	}
	_ = c.Error(err)
}
