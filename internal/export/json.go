package export

import (
	json "github.com/goccy/go-json"

	"github.com/aquawatt/hydrocalc/internal/hydro"
)

// MarshalResult renders a result as indented JSON with the original
// snake_case keys. The infinity sentinels encode as the string
// "Infinity" (JSON carries no infinity literal).
func MarshalResult(res hydro.Result) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}

// UnmarshalResult parses JSON produced by MarshalResult.
func UnmarshalResult(data []byte) (hydro.Result, error) {
	var res hydro.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return hydro.Result{}, err
	}
	return res, nil
}
