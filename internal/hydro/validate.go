package hydro

import (
	"errors"
	"fmt"
	"math"
)

// InputError reports a single input field outside its documented domain.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// AsInputError unwraps err into an *InputError if it is one.
func AsInputError(err error) (*InputError, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

func invalid(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks every field of p against its documented domain and
// returns an *InputError naming the offending field. Non-finite values
// are rejected everywhere. Note that TurbineType is deliberately not
// checked here: the efficiency lookup tolerates unknown types with a
// default factor, and strict rejection belongs at the input edge via
// turbine.ParseType.
func (p SiteParams) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"head_m", p.HeadM},
		{"flow_m3s", p.FlowM3s},
		{"efficiency", p.Efficiency},
		{"electricity_price", p.ElectricityPrice},
		{"discount_rate", p.DiscountRate},
		{"capacity_factor", p.CapacityFactor},
		{"capex_per_kw", p.CapexPerKw},
		{"om_fraction", p.OmFraction},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return invalid(c.field, "must be a finite number, got %v", c.value)
		}
	}

	if p.HeadM <= 0 {
		return invalid("head_m", "must be > 0, got %g", p.HeadM)
	}
	if p.FlowM3s <= 0 {
		return invalid("flow_m3s", "must be > 0, got %g", p.FlowM3s)
	}
	if p.Efficiency <= 0 || p.Efficiency > 1 {
		return invalid("efficiency", "must be in (0, 1], got %g", p.Efficiency)
	}
	if p.ElectricityPrice < 0 {
		return invalid("electricity_price", "must be >= 0, got %g", p.ElectricityPrice)
	}
	if p.ProjectLifetime <= 0 {
		return invalid("project_lifetime", "must be > 0 years, got %d", p.ProjectLifetime)
	}
	if p.DiscountRate < 0 || p.DiscountRate >= 1 {
		return invalid("discount_rate", "must be in [0, 1), got %g", p.DiscountRate)
	}
	if p.CapacityFactor <= 0 || p.CapacityFactor > 1 {
		return invalid("capacity_factor", "must be in (0, 1], got %g", p.CapacityFactor)
	}
	if p.CapexPerKw <= 0 {
		return invalid("capex_per_kw", "must be > 0, got %g", p.CapexPerKw)
	}
	if p.OmFraction < 0 {
		return invalid("om_fraction", "must be >= 0, got %g", p.OmFraction)
	}
	return nil
}
