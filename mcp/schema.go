package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// exportInputSchema is the input schema of export_resume. Résumé records
// edited by users or returned by the structuring model may leave sections
// out or set optional fields to null, so only contact.fullName and format
// are required and every other field is nullable.
func exportInputSchema() *jsonschema.Schema {
	contact := object("Résumé header", []string{"fullName"}, map[string]*jsonschema.Schema{
		"fullName": {Type: "string", Description: "candidate's full name"},
		"email":    nullable("string", ""),
		"phone":    nullable("string", ""),
		"location": nullable("string", ""),
		"linkedin": nullable("string", ""),
		"website":  nullable("string", ""),
	})

	experience := object("", nil, map[string]*jsonschema.Schema{
		"id":         nullable("string", ""),
		"company":    nullable("string", ""),
		"position":   nullable("string", ""),
		"location":   nullable("string", ""),
		"startDate":  nullable("string", ""),
		"endDate":    nullable("string", ""),
		"current":    nullable("boolean", ""),
		"highlights": stringList("achievement bullets"),
	})

	education := object("", nil, map[string]*jsonschema.Schema{
		"id":             nullable("string", ""),
		"institution":    nullable("string", ""),
		"degree":         nullable("string", ""),
		"field":          nullable("string", ""),
		"location":       nullable("string", ""),
		"graduationDate": nullable("string", ""),
		"gpa":            nullable("string", ""),
		"highlights":     stringList("honours and coursework"),
	})

	resumeData := object("structured résumé, as returned by parse_resume; absent sections are left out of the file",
		[]string{"contact"}, map[string]*jsonschema.Schema{
			"contact":        contact,
			"summary":        nullable("string", "professional summary"),
			"experience":     {Types: []string{"null", "array"}, Items: experience},
			"education":      {Types: []string{"null", "array"}, Items: education},
			"skills":         stringList(""),
			"certifications": stringList(""),
			"languages":      stringList(""),
			"rawText":        nullable("string", "ignored by every format except json"),
		})

	return object("", []string{"resumeData", "format"}, map[string]*jsonschema.Schema{
		"resumeData": resumeData,
		"format":     {Type: "string", Description: "one of json, md, pdf, odt"},
	})
}

func object(description string, required []string, properties map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: description,
		Required:    required,
		Properties:  properties,
	}
}

func nullable(typ, description string) *jsonschema.Schema {
	return &jsonschema.Schema{Types: []string{"null", typ}, Description: description}
}

// stringList accepts a list, a single string or null, matching
// models.FlexibleStringSlice.
func stringList(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Types:       []string{"null", "array", "string"},
		Items:       &jsonschema.Schema{Type: "string"},
		Description: description,
	}
}
