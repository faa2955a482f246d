package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// InterpolateStruct expands environment references in the string fields of
// v tagged `env_interpolation:"yes"`. Nested structs and struct pointers are
// walked regardless of their own tag. v must be a pointer to a struct.
func InterpolateStruct(v any) error {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}
	if val.IsNil() {
		return nil
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}

	typ := val.Type()
	var errs []error

	for i := range val.NumField() {
		field := val.Field(i)
		meta := typ.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if !strings.EqualFold(meta.Tag.Get("env_interpolation"), "yes") {
				continue
			}
			if field.String() == "" {
				continue
			}
			expanded, err := ExpandEnvVars(field.String())
			if err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", meta.Name, err))
				continue
			}
			field.SetString(expanded)

		case reflect.Struct:
			if err := InterpolateStruct(field.Addr().Interface()); err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", meta.Name, err))
			}

		case reflect.Ptr:
			if field.IsNil() || field.Type().Elem().Kind() != reflect.Struct {
				continue
			}
			if err := InterpolateStruct(field.Interface()); err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", meta.Name, err))
			}
		}
	}

	return errors.Join(errs...)
}
