package hydro

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
)

// infinityToken is the JSON encoding of the +Inf sentinel used by LCOE
// and payback. JSON has no infinity literal, so the sentinel travels as
// a string and is restored on decode.
const infinityToken = "Infinity"

func encodeSentinel(v float64) any {
	if math.IsInf(v, 1) {
		return infinityToken
	}
	return v
}

func decodeSentinel(raw any, field string) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case string:
		if v == infinityToken {
			return math.Inf(1), nil
		}
		return 0, fmt.Errorf("%s: unexpected string %q", field, v)
	default:
		return 0, fmt.Errorf("%s: unexpected type %T", field, raw)
	}
}

// MarshalJSON encodes the metrics with the infinity sentinel replaced by
// its string token, since neither LCOE nor payback is guaranteed finite.
func (m EconomicMetrics) MarshalJSON() ([]byte, error) {
	type alias EconomicMetrics
	return json.Marshal(struct {
		alias
		Lcoe               any `json:"lcoe"`
		SimplePaybackYears any `json:"simple_payback_years"`
	}{
		alias:              alias(m),
		Lcoe:               encodeSentinel(m.Lcoe),
		SimplePaybackYears: encodeSentinel(m.SimplePaybackYears),
	})
}

// UnmarshalJSON restores the infinity sentinel from its string token.
func (m *EconomicMetrics) UnmarshalJSON(data []byte) error {
	// The local alias type must be exported: goccy/go-json refuses to
	// decode fields promoted through an embedded pointer to an
	// unexported struct type.
	type Alias EconomicMetrics
	aux := struct {
		*Alias
		Lcoe               any `json:"lcoe"`
		SimplePaybackYears any `json:"simple_payback_years"`
	}{Alias: (*Alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	lcoe, err := decodeSentinel(aux.Lcoe, "lcoe")
	if err != nil {
		return err
	}
	payback, err := decodeSentinel(aux.SimplePaybackYears, "simple_payback_years")
	if err != nil {
		return err
	}
	m.Lcoe = lcoe
	m.SimplePaybackYears = payback
	return nil
}
