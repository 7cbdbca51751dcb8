// Package schemavalidation validates serialized tree updates against the
// embedded JSON Schema.
package schemavalidation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed treeupdate.schema.json
var treeUpdateSchema []byte

const schemaURL = "https://accesstree.dev/schema/treeupdate-v1.schema.json"

var compiled = mustCompile()

func mustCompile() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(treeUpdateSchema)); err != nil {
		panic(fmt.Sprintf("schemavalidation: add resource: %v", err))
	}
	return compiler.MustCompile(schemaURL)
}

// Validate checks that doc is a well-formed serialized tree update. The
// returned error carries the schema path of the first violation.
func Validate(doc []byte) error {
	var instance any
	if err := json.Unmarshal(doc, &instance); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := compiled.Validate(instance); err != nil {
		return fmt.Errorf("validate tree update: %w", err)
	}
	return nil
}
