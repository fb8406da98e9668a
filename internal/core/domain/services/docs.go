// Package services contains stateless domain services that coordinate
// behavior across aggregates. The StockLedger commits an order's inventory
// against product on-hand quantities as one all-or-nothing step.
package services
