package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"
)

// document is the on-disk catalog representation.
type document struct {
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// schemaSource constrains catalog documents. Every parameter needs a
// non-empty name; unit and range are free text.
const schemaSource = `
#Parameter: {
	name:    string & !=""
	unit:    string
	"range": string
}

#Catalog: {
	parameters: [#Parameter, ...#Parameter]
}
`

// Load reads a catalog from a YAML or JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog from YAML or JSON data (JSON is valid YAML).
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	return New(doc.Parameters...)
}

// validate checks doc against the catalog schema.
func validate(doc document) error {
	if len(doc.Parameters) == 0 {
		return ErrEmptyCatalog
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Catalog"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("invalid catalog schema: %w", err)
	}

	value := schema.Unify(ctx.Encode(doc))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("catalog does not match schema: %w", err)
	}
	return nil
}

// Write encodes c as YAML to w in the format accepted by Parse.
func (c *Catalog) Write(w io.Writer) error {
	data, err := yaml.Marshal(document{Parameters: c.Parameters()})
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}
