package store

import (
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// number is a float64 that also decodes from quoted decimal strings.
// Interchange records frequently quote numbers to preserve the original
// decimal text, and some upstream sources emit Fortran D-notation
// exponents ("0.3425250914D+01").
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return err
		}
		s = quoted
	}
	f, err := parseDecimal(s)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*n = number(f)
	return nil
}

// parseDecimal parses decimal text, accepting D/d as an exponent marker.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "dD"); i >= 0 {
		s = s[:i] + "e" + s[i+1:]
	}
	return strconv.ParseFloat(s, 64)
}

// floatSlice converts decoded numbers to the model representation.
func floatSlice(ns []number) []float64 {
	if ns == nil {
		return nil
	}
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = float64(n)
	}
	return out
}

// floatMatrix converts decoded coefficient rows to the model
// representation.
func floatMatrix(rows [][]number) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = floatSlice(r)
	}
	return out
}

// decodeRecord unmarshals record bytes into v, choosing the encoding by
// file extension. YAML is normalized to JSON first so both encodings
// share the JSON field tags and the tolerant number decoding.
func decodeRecord(relpath string, data []byte, v any) error {
	data, err := RecordJSON(relpath, data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// RecordJSON returns record bytes as JSON, converting YAML records by
// their file extension. JSON records pass through untouched.
func RecordJSON(relpath string, data []byte) ([]byte, error) {
	if ext := path.Ext(relpath); ext == ".yaml" || ext == ".yml" {
		j, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return j, nil
	}
	return data, nil
}

// yamlToJSON re-encodes YAML document bytes as JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	v, err := jsonifyValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// jsonifyValue rewrites decoded YAML values into JSON-marshalable form,
// rejecting non-string mapping keys.
func jsonifyValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			c, err := jsonifyValue(val)
			if err != nil {
				return nil, err
			}
			t[k] = c
		}
		return t, nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string mapping key %v", k)
			}
			c, err := jsonifyValue(val)
			if err != nil {
				return nil, err
			}
			m[ks] = c
		}
		return m, nil
	case []any:
		for i, val := range t {
			c, err := jsonifyValue(val)
			if err != nil {
				return nil, err
			}
			t[i] = c
		}
		return t, nil
	default:
		return v, nil
	}
}
