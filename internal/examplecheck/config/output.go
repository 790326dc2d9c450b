package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

type OutputFormat string

const (
	OutputText  OutputFormat = "text"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputTable OutputFormat = "table"
)

var validOutputFormats = []OutputFormat{OutputText, OutputJSON, OutputYAML, OutputTable}

func normalizeOutputFormat(s string) OutputFormat {
	return OutputFormat(strings.ToLower(strings.TrimSpace(s)))
}

// ParseOutputFormat accepts a format name in any case and reports an error
// for anything foldercheck cannot render.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := normalizeOutputFormat(s)
	for _, valid := range validOutputFormats {
		if format == valid {
			return format, nil
		}
	}
	names := make([]string, len(validOutputFormats))
	for i, f := range validOutputFormats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("invalid output format: %s (must be one of: %s)", s, strings.Join(names, ", "))
}

// outputFormatHook normalizes the output format while decoding. Unknown
// formats are kept as is; only commands that render output reject them.
func outputFormatHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(OutputFormat("")) || from.Kind() != reflect.String {
			return data, nil
		}
		return normalizeOutputFormat(reflect.ValueOf(data).String()), nil
	}
}
