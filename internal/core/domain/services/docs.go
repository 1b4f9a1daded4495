// Package services provides the domain service that prices delivery.
//
// The package includes:
//   - DeliveryCostCalculator: runs pricing rules from package costrules over an order
//     in ascending priority and returns the resulting delivery cost
//
// The calculator holds no mutable state between runs and is safe for concurrent use.
package services
