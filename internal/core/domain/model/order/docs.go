// Package order provides the Order aggregate root of the marketplace and the
// records that hang off it.
//
// The package includes:
//   - Order: the aggregate root holding ownership, pricing and lifecycle state
//   - Status: the finite state machine over NEW, ASSIGNED, IN_PROGRESS, READY,
//     DELIVERED and CANCELLED
//   - Pricing: subtotal, commission and total in minor units
//   - StatusChange: a pending audit row produced by every transition
//   - Comment, File and Offer: append-only and read-only child records
//
// Key business rules:
//   - total equals subtotal + commission and is never recomputed
//   - DELIVERED and CANCELLED are absorbing; NEW is only ever the initial state
//   - every status change queues exactly one StatusChange which the repository
//     writes in the same transaction as the order row
//   - cancellation fields are set together by the CANCELLED transition and
//     never cleared
//
// Authorization (who may trigger a transition) lives in the domain services
// package; the aggregate only enforces state rules.
package order
