package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// NewValidationErrorResponse 创建422校验错误响应
func NewValidationErrorResponse(errs []FieldError) APIResponse[[]FieldError] {
	return APIResponse[[]FieldError]{
		Code:    422,
		Message: "Unprocessable Entity",
		Data:    errs,
	}
}

// TranslateBindError 将绑定阶段的错误转换为字段错误列表
// target 为绑定目标（用于把结构体字段名映射为JSON字段名）
func TranslateBindError(err error, target any) []FieldError {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
		elementErr     *InvalidElementError
	)

	switch {
	case errors.As(err, &validationErrs):
		out := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, FieldError{
				Field: jsonFieldName(target, fe.StructField()),
				Error: describeTag(fe),
			})
		}
		return out
	case errors.As(err, &elementErr):
		return []FieldError{{Field: elementErr.Field, Error: elementErr.Reason}}
	case errors.Is(err, ErrInvalidEdge):
		return []FieldError{{Field: "edges", Error: err.Error()}}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{
			Field: field,
			Error: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
		}}
	case errors.As(err, &syntaxErr):
		return []FieldError{{Field: "body", Error: fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)}}
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return []FieldError{{Field: "body", Error: "request body must be a JSON object"}}
	default:
		return []FieldError{{Field: "body", Error: err.Error()}}
	}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// jsonFieldName 查找结构体字段对应的json标签名
func jsonFieldName(target any, structField string) string {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return structField
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return structField
	}
	return name
}
