// Package order contains the Order aggregate: immutable line items with
// price snapshots, the per-order Processing record, and the status state
// machine that gates stock commitment.
//
// The aggregate enforces:
//   - line items and the order total are fixed at creation time,
//   - status transitions follow the lifecycle
//     Created -> Scanned -> Delivered, with Cancelled reachable from Created
//     and a revert to Created allowed from any non-terminal status,
//   - reverting to Created clears the prepared-by and scanned-by references,
//   - the stock-committed flag rises at most once per order, so inventory is
//     never decremented twice even across revert and re-scan cycles.
package order
