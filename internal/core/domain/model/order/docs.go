// Package order provides the Order snapshot that delivery pricing works on.
//
// The package includes:
//   - Order: weight, merchandise value, destination country, creation time and lines
//   - Item: a single order line (position, name, unit price, quantity)
//
// Orders are validated once at construction and never change afterwards.
package order
