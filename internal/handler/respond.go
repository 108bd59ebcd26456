package handler

import (
	"errors"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/middleware"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// accepted due_date layouts, tried in order
var dueDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDueDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dueDateLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t.UTC(), nil
		}
		err = perr
	}
	return time.Time{}, err
}

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("handler: gin binding engine is not validator/v10")
	}

	// report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
		_, err := parseDueDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// bindJSON decodes the request body into req. It writes a 400 for an unreadable
// body and a 422 listing the failed fields, and reports whether the handler may go on.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   "Validation failed",
		Details: details,
	})
	return false
}

// pathID reads a positive numeric path parameter, writing a 400 when it is malformed.
func pathID(c *gin.Context, param, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + resource + " ID format"})
		return 0, false
	}
	return id, true
}

// internalError logs err with the request id and answers with a fixed message only.
func internalError(c *gin.Context, message string, err error) {
	log.Printf("❌ [%s] %s: %s", middleware.GetRequestID(c), message, repository.Describe(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
