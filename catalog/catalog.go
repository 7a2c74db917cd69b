package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/labscan/model"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no parameters.
	ErrEmptyCatalog = errors.New("catalog has no parameters")
	// ErrEmptyName is returned when a parameter has a blank name.
	ErrEmptyName = errors.New("parameter name is empty")
	// ErrDuplicateName is returned when two parameters share a name.
	ErrDuplicateName = errors.New("duplicate parameter name")
	// ErrReservedName is returned for a parameter named like impression
	// remarks, which would be indistinguishable from them in results.
	ErrReservedName = errors.New("parameter name is reserved")
)

// Parameter is a known lab parameter with its fixed unit and reference range.
type Parameter struct {
	Name  string `json:"name" yaml:"name"`
	Unit  string `json:"unit" yaml:"unit"`
	Range string `json:"range" yaml:"range"`
}

// Catalog is an ordered, immutable list of parameters.
// The zero value is an empty catalog.
type Catalog struct {
	params []Parameter
}

// New creates a catalog from params, preserving their order.
// Names must be non-blank and unique (compared case-insensitively), and may
// not be "Impression".
func New(params ...Parameter) (*Catalog, error) {
	if len(params) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(params))
	copied := make([]Parameter, len(params))
	for i, p := range params {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("parameter %d: %w", i+1, ErrEmptyName)
		}
		if strings.EqualFold(name, model.ImpressionParameter) {
			return nil, fmt.Errorf("%w: %q", ErrReservedName, name)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[key] = true
		copied[i] = Parameter{Name: name, Unit: p.Unit, Range: p.Range}
	}

	return &Catalog{params: copied}, nil
}

// MustNew is like New but panics on error.
func MustNew(params ...Parameter) *Catalog {
	c, err := New(params...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultParameters = []Parameter{
	{Name: "Hemoglobin", Unit: "g/dL", Range: "12.0-16.0"},
	{Name: "WBC Count", Unit: "/mm3", Range: "4000-11000"},
	{Name: "Platelet Count", Unit: "lakhs", Range: "1.5-4.0"},
	{Name: "Blood Glucose", Unit: "mg/dL", Range: "70-110"},
	{Name: "Cholesterol", Unit: "mg/dL", Range: "<200"},
	{Name: "HDL Cholesterol", Unit: "mg/dL", Range: ">40"},
	{Name: "LDL Cholesterol", Unit: "mg/dL", Range: "<130"},
	{Name: "Triglycerides", Unit: "mg/dL", Range: "<150"},
}

// Default returns the built-in eight-parameter blood panel catalog.
func Default() *Catalog {
	return MustNew(defaultParameters...)
}

// Len returns the number of parameters in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.params)
}

// At returns the i-th parameter (0-indexed).
func (c *Catalog) At(i int) Parameter {
	return c.params[i]
}

// Parameters returns a copy of the catalog's parameters in order.
func (c *Catalog) Parameters() []Parameter {
	if c == nil {
		return nil
	}
	out := make([]Parameter, len(c.params))
	copy(out, c.params)
	return out
}

// Lookup returns the parameter with the given name, compared
// case-insensitively.
func (c *Catalog) Lookup(name string) (Parameter, bool) {
	if c == nil {
		return Parameter{}, false
	}
	for _, p := range c.params {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Parameter{}, false
}

// Names returns the parameter names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.params))
	for i, p := range c.params {
		names[i] = p.Name
	}
	return names
}
