// Package docs embeds the OpenAPI document of the HTTP API and registers it with
// swag so that echo-swagger can serve it.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

// OpenAPI is the raw OpenAPI 3 document.
//
//go:embed openapi.json
var OpenAPI []byte

// SwaggerInfo holds the registered document.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Delivery cost API",
	Description:      "Quotes the delivery cost of an order by applying the configured pricing rules.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(OpenAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
