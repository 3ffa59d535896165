package handlers

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Request shapes. Unknown properties are ignored; ids must fit the store's 32-bit columns.
const (
	credentialsSchema = `{
		"type": "object",
		"required": ["username", "password"],
		"properties": {
			"username": {"type": "string"},
			"password": {"type": "string"}
		}
	}`

	createSchema = `{
		"type": "object",
		"required": ["user_id", "title", "body"],
		"properties": {
			"user_id": {"$ref": "#/$defs/id"},
			"title": {"type": "string"},
			"body": {"type": "string"}
		},
		"$defs": {
			"id": {"type": "integer", "minimum": -2147483648, "maximum": 2147483647}
		}
	}`

	getSchema = `{
		"type": "object",
		"required": ["user_id"],
		"properties": {
			"user_id": {"$ref": "#/$defs/id"},
			"offset": {"type": ["integer", "null"], "minimum": 0, "maximum": 2147483647},
			"count": {"type": ["integer", "null"], "minimum": 0, "maximum": 2147483647}
		},
		"$defs": {
			"id": {"type": "integer", "minimum": -2147483648, "maximum": 2147483647}
		}
	}`

	editSchema = `{
		"type": "object",
		"required": ["user_id", "todo_id"],
		"properties": {
			"user_id": {"$ref": "#/$defs/id"},
			"todo_id": {"$ref": "#/$defs/id"},
			"title": {"type": ["string", "null"]},
			"body": {"type": ["string", "null"]},
			"done": {"type": ["boolean", "null"]}
		},
		"$defs": {
			"id": {"type": "integer", "minimum": -2147483648, "maximum": 2147483647}
		}
	}`

	deleteSchema = `{
		"type": "object",
		"required": ["user_id", "todo_id"],
		"properties": {
			"user_id": {"$ref": "#/$defs/id"},
			"todo_id": {"$ref": "#/$defs/id"}
		},
		"$defs": {
			"id": {"type": "integer", "minimum": -2147483648, "maximum": 2147483647}
		}
	}`
)

var (
	registerRequestSchema = jsonschema.MustCompileString("register.json", credentialsSchema)
	loginRequestSchema    = jsonschema.MustCompileString("login.json", credentialsSchema)
	createRequestSchema   = jsonschema.MustCompileString("create.json", createSchema)
	getRequestSchema      = jsonschema.MustCompileString("get.json", getSchema)
	editRequestSchema     = jsonschema.MustCompileString("edit.json", editSchema)
	deleteRequestSchema   = jsonschema.MustCompileString("delete.json", deleteSchema)
)

// schemaErrorDetail returns the deepest validation failure, which names the offending field.
func schemaErrorDetail(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return ve.InstanceLocation + ": " + ve.Message
}
