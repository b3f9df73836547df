package datagen

import "github.com/erraggy/oastestgen/oas"

// ContentTypeJSON is the default request body content type.
const ContentTypeJSON = "application/json"

// GenerateParameterData generates a valid value for an operation parameter.
// Returns nil when the parameter carries no schema; that is an expected,
// common case (e.g. content-typed parameters), not an error.
func (g *Generator) GenerateParameterData(param *oas.Parameter) any {
	if param == nil || param.Schema == nil {
		return nil
	}
	if g.opts.UseExamples && param.Example != nil {
		return param.Example
	}

	result, err := g.GenerateFromSchema(param.Schema, ModeValid)
	if err != nil {
		g.logger.Error("parameter generation failed", "parameter", param.Name, "in", param.In, "error", err)
		return nil
	}
	return result.Value
}

// GenerateRequestBodyData generates a valid value for a request body's
// media type. An empty contentType defaults to application/json. Returns nil
// when the requested content type is absent or carries no schema.
func (g *Generator) GenerateRequestBodyData(body *oas.RequestBody, contentType string) any {
	if body == nil {
		return nil
	}
	if contentType == "" {
		contentType = ContentTypeJSON
	}

	media, ok := body.Content[contentType]
	if !ok || media == nil || media.Schema == nil {
		return nil
	}
	if g.opts.UseExamples && media.Example != nil {
		return media.Example
	}

	result, err := g.GenerateFromSchema(media.Schema, ModeValid)
	if err != nil {
		g.logger.Error("request body generation failed", "contentType", contentType, "error", err)
		return nil
	}
	return result.Value
}

// GenerateRequestBodyDataJSON generates a valid application/json body value.
func (g *Generator) GenerateRequestBodyDataJSON(body *oas.RequestBody) any {
	return g.GenerateRequestBodyData(body, ContentTypeJSON)
}
