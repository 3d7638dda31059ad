package utils

import (
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/coursehub/forumtree/shared/errors"
	"github.com/coursehub/forumtree/shared/logger"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("cannot decode json body", "error", err)
		return &errors.ErrorWithStatusCode{Message: fmt.Sprintf("Body is invalid json: %v", err), StatusCode: http.StatusBadRequest}
	}
	return nil
}

// DecodeValidate decodes body and runs struct validation on it. A pointer to
// a slice validates every element.
func DecodeValidate(r io.Reader, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := Validate(body); err != nil {
		logger.Log.Debug("body failed validation", "error", err)
		return &errors.ErrorWithStatusCode{Message: fmt.Sprintf("Required fields missing: %v", err), StatusCode: http.StatusBadRequest}
	}
	return nil
}

func Validate(body any) error {
	v := reflect.Indirect(reflect.ValueOf(body))
	if v.Kind() != reflect.Slice {
		return validate.Struct(body)
	}
	for i := 0; i < v.Len(); i++ {
		if err := validate.Struct(v.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}
