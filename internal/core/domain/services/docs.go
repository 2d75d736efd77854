// Package services provides the stateless authorization rules of the
// marketplace. They decide who may see an order and who may trigger each
// lifecycle transition; the Order aggregate itself only enforces state rules.
//
// The package includes:
//   - VisibilityPolicy: whether an actor may see or act on an order, and how
//     an order listing is scoped for that actor
//   - TransitionPolicy: pure (actor, order) -> Decision functions for every
//     transition, evaluated once before a transaction and again under the
//     order row lock
//
// Policies never touch storage, so a command handler can evaluate them
// against the locked row without extra round trips.
package services
