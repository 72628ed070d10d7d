package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/jbenteu/lance-pro-control/internal/apierror"
	"github.com/jbenteu/lance-pro-control/internal/service"

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
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// validateStruct runs the validator tags on an already-bound struct (body or
// query) and writes the 422 envelope on failure.
func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondErr maps service sentinel errors to HTTP status codes. Unknown errors
// are pushed onto the Gin error list so ErrorHandler logs them and returns a
// generic 500.
func respondErr(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrLicitacaoNaoEncontrada),
		errors.Is(err, service.ErrItemNaoEncontrado),
		errors.Is(err, service.ErrCotacaoNaoEncontrada),
		errors.Is(err, service.ErrFornecedorNaoEncontrado),
		errors.Is(err, service.ErrOrgaoNaoEncontrado),
		errors.Is(err, service.ErrAnexoNaoEncontrado),
		errors.Is(err, service.ErrRelatorioNaoEncontrado),
		errors.Is(err, service.ErrUsuarioNaoEncontrado):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailJaCadastrado),
		errors.Is(err, service.ErrCNPJJaCadastrado),
		errors.Is(err, service.ErrUASGJaCadastrada),
		errors.Is(err, service.ErrRelatorioNaoPronto):
		status = http.StatusConflict
	case errors.Is(err, service.ErrStatusInvalido),
		errors.Is(err, service.ErrModalidadeInvalida):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrAnexoNaoPDF):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, service.ErrAnexoMuitoGrande):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrCredenciaisInvalidas),
		errors.Is(err, service.ErrTokenInvalido):
		status = http.StatusUnauthorized
	default:
		_ = c.Error(err)
		return
	}
	c.JSON(status, apierror.New(err.Error()))
}

// parseUUIDParam reads the named path parameter as a UUID, writing a 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
