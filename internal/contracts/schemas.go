package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		log.Fatalf("failed to read embedded schemas: %v", err)
	}

	for _, entry := range entries {
		path := "schemas/" + entry.Name()
		file, err := schemaFS.Open(path)
		if err != nil {
			log.Fatalf("failed to open schema %s: %v", path, err)
		}
		if err := compiler.AddResource(path, file); err != nil {
			log.Fatalf("failed to add schema resource %s: %v", path, err)
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			log.Fatalf("failed to compile schema %s: %v", path, err)
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		compiledSchemas[name] = schema
	}
}

// Validate проверяет тело запроса по именованной схеме ("register", "login",
// "property", "contact", "estimate").
func Validate(name string, body []byte) error {
	schema, ok := compiledSchemas[name]
	if !ok {
		return fmt.Errorf("schema '%s' not found", name)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("request body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}

// ValidateValue проверяет уже распарсенное значение (например, форму,
// собранную из multipart-полей) по именованной схеме.
func ValidateValue(name string, v interface{}) error {
	schema, ok := compiledSchemas[name]
	if !ok {
		return fmt.Errorf("schema '%s' not found", name)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
