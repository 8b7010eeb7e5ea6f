package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// applyEnv overrides every field tagged with `env` whose variable holds a
// non-blank value. Blank variables are ignored so placeholder lines in a
// .env file do not wipe values from config.yaml. All bad values are
// reported together.
func applyEnv(target interface{}) error {
	root := reflect.ValueOf(target)
	if root.Kind() != reflect.Ptr || root.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env overrides need a pointer to a struct, got %T", target)
	}

	var errs []error
	walkEnvFields(root.Elem(), "", func(path, name string, field reflect.Value) {
		raw, ok := os.LookupEnv(name)
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			return
		}
		if err := assignEnvValue(field, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s (%s): %w", name, path, err))
		}
	})
	return errors.Join(errs...)
}

func walkEnvFields(v reflect.Value, prefix string, visit func(path, name string, field reflect.Value)) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		path := sf.Name
		if tag := strings.Split(sf.Tag.Get("yaml"), ",")[0]; tag != "" {
			path = tag
		}
		if prefix != "" {
			path = prefix + "." + path
		}

		field := v.Field(i)
		if field.Kind() == reflect.Struct {
			walkEnvFields(field, path, visit)
			continue
		}
		if name := sf.Tag.Get("env"); name != "" {
			visit(path, name, field)
		}
	}
}

func assignEnvValue(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("not a boolean: %q", raw)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("not an integer: %q", raw)
		}
		field.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", raw)
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
