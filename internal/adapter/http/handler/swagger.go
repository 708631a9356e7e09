package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	docsTitle   = "CalFinance card API"
	docsSpecURL = "/swagger/spec"
)

// swaggerSpec holds the OpenAPI YAML of the card API, loaded at startup.
var swaggerSpec []byte

var docsPage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui" data-spec="{{.SpecURL}}"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    const el = document.getElementById('swagger-ui');
    SwaggerUIBundle({url: el.dataset.spec, domNode: el});
  </script>
</body>
</html>`))

// docsHTML is rendered once; the page has no per-request data.
var docsHTML = renderDocs()

func renderDocs() []byte {
	var buf bytes.Buffer
	_ = docsPage.Execute(&buf, struct{ Title, SpecURL string }{docsTitle, docsSpecURL})
	return buf.Bytes()
}

// SetSwaggerSpec sets the OpenAPI specification bytes for serving.
func SetSwaggerSpec(spec []byte) {
	swaggerSpec = spec
}

// SwaggerSpec serves the raw OpenAPI YAML, or 404 when none was loaded.
func SwaggerSpec(c *gin.Context) {
	if swaggerSpec == nil {
		c.String(http.StatusNotFound, "OpenAPI document not loaded")
		return
	}
	c.Data(http.StatusOK, "application/yaml", swaggerSpec)
}

// SwaggerUI serves a Swagger UI page pointed at the card API document.
func SwaggerUI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", docsHTML)
}
