package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

const (
	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeForbiddenError    = 403
	codeNotFound          = 404
	codeValidationError   = 422
)

// HTTPHelper carries the response envelope plus the validator used for
// request bodies that are validated outside gin's binding.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func (u *HTTPHelper) send(c *gin.Context, message string, data interface{}, code int, codeType string) {
	httpStatus := http.StatusOK
	switch code {
	case codeBadRequestError, codeValidationError:
		httpStatus = http.StatusBadRequest
	case codeUnauthorizedError:
		httpStatus = http.StatusUnauthorized
	case codeForbiddenError:
		httpStatus = http.StatusForbidden
	case codeNotFound:
		httpStatus = http.StatusNotFound
	}
	c.JSON(httpStatus, map[string]interface{}{
		"code":         code,
		"code_type":    codeType,
		"code_message": message,
		"data":         data,
	})
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	if message == "" {
		message = "success"
	}
	u.send(c, message, data, codeSuccess, `success`)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) {
	u.send(c, message, data, codeBadRequestError, `badRequest`)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) {
	u.send(c, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) {
	u.send(c, message, data, codeForbiddenError, `forbidden`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) {
	u.send(c, message, data, codeNotFound, `notFound`)
}

// SendValidationError ...
// Send per-field validation errors to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    `validationError`,
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
