package api

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"tokenfolio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Report violated fields under their JSON names, not their Go names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// fieldError is one violated constraint in a rejected request body.
type fieldError struct {
	Field string `json:"field"` // JSON field name
	Rule  string `json:"rule"`  // Violated validation rule, e.g. required, oneof
}

// respondBindingError turns a ShouldBindJSON failure into a 400 with a
// machine-readable list of violated fields. Type mismatches and malformed
// JSON get the same status with no field list.
func respondBindingError(c *gin.Context, err error, noun string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + noun + " data", "errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + noun + " data"})
}

// respondError maps a domain failure to its status code. Anything that is
// not a typed *service.Error is logged and sanitized to a generic 500.
func respondError(c *gin.Context, err error, fallback string) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		c.JSON(statusForKind(svcErr.Kind), gin.H{"message": svcErr.Message})
		return
	}
	logrus.WithFields(logrus.Fields{
		"path":  c.FullPath(),
		"error": err.Error(),
	}).Error(fallback)
	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
}

func statusForKind(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// pathID parses a numeric path parameter. A non-integer yields a 400 before
// any domain call is made; the bool reports whether the caller may proceed.
func pathID(c *gin.Context, param, label string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + label + " ID"})
		return 0, false
	}
	return id, true
}
