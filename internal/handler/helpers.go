package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedrodiniz00/sistema-obras/internal/apierror"
	"github.com/pedrodiniz00/sistema-obras/internal/calculadora"
	"github.com/pedrodiniz00/sistema-obras/internal/cronograma"
	"github.com/pedrodiniz00/sistema-obras/internal/service"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
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
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads the :id path param as a UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// statusPorErro maps domain errors to HTTP codes. Zero means "unexpected".
var statusPorErro = []struct {
	err    error
	status int
}{
	{service.ErrObraNaoEncontrada, http.StatusNotFound},
	{service.ErrEtapaNaoEncontrada, http.StatusNotFound},
	{service.ErrDocumentoAusente, http.StatusNotFound},
	{service.ErrObraDuplicada, http.StatusConflict},
	{service.ErrExclusaoNaoConfirmada, http.StatusConflict},
	{service.ErrIntervaloInvalido, http.StatusUnprocessableEntity},
	{service.ErrDataInvalida, http.StatusUnprocessableEntity},
	{service.ErrDocumentoIlegivel, http.StatusUnprocessableEntity},
	{calculadora.ErrTracoDesconhecido, http.StatusUnprocessableEntity},
	{cronograma.ErrForaDoCalendario, http.StatusUnprocessableEntity},
	{service.ErrCredenciaisInvalidas, http.StatusUnauthorized},
	{service.ErrTokenInvalido, http.StatusUnauthorized},
	{sessao.ErrSemSessao, http.StatusUnauthorized},
}

// isErroDeDominio reports whether err maps to a known HTTP status.
func isErroDeDominio(err error) bool {
	for _, m := range statusPorErro {
		if errors.Is(err, m.err) {
			return true
		}
	}
	return false
}

// responderErro writes the envelope for a known domain error; anything else
// is attached to the context for ErrorHandler to log and answer with a 500.
func responderErro(c *gin.Context, err error) {
	for _, m := range statusPorErro {
		if errors.Is(err, m.err) {
			c.JSON(m.status, apierror.New(m.err.Error()))
			return
		}
	}
	_ = c.Error(err)
}
