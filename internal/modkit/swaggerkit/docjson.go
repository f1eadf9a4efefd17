package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"pcaobdash/internal/platform/config"
	perr "pcaobdash/internal/platform/errors"

	docs "pcaobdash/internal/services/api/docs"
)

// docReader is a seam for tests
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const errorSchemaRef = "#/components/schemas/ErrorResponse"

// every operation documents these unless its annotations already do
var defaultErrors = []struct {
	status  int
	code    perr.ErrorCode
	message string
}{
	{http.StatusBadRequest, perr.ErrorCodeValidation, "max must be at least min"},
	{http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered"},
}

// serveDocJSON serves the generated spec lifted to OAS 3.0 with the error envelope filled in
func serveDocJSON(cfg config.Conf) http.HandlerFunc {
	suffix := cfg.MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalizeVersion(spec, "/api/v1")
		if info, ok := spec["info"].(map[string]any); ok && suffix != "" {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + suffix
			}
		}
		addErrorSchema(spec)
		addDefaultErrors(spec)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalizeVersion pins the document to 3.0.3 since the UI does not render 3.1
func normalizeVersion(spec map[string]any, baseURL string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": baseURL}}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// addErrorSchema mirrors the envelope error responses are written with
func addErrorSchema(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	str := map[string]any{"type": "string"}
	num := map[string]any{"type": "integer", "format": "int32"}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": num,
			"status":      str,
			"code":        num,
			"error":       str,
			"request_id":  str,
		},
		"required": []any{"status_code", "status"},
	}
}

func addDefaultErrors(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, raw := range node {
			op, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			for _, d := range defaultErrors {
				status := strconv.Itoa(d.status)
				if _, exists := resps[status]; exists {
					continue
				}
				text := http.StatusText(d.status)
				resps[status] = map[string]any{
					"description": text,
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{"$ref": errorSchemaRef},
							"example": map[string]any{
								"status_code": d.status,
								"status":      text,
								"code":        int(d.code),
								"error":       d.message,
								"request_id":  "dash-01/abc-000001",
							},
						},
					},
				}
			}
		}
	}
}
