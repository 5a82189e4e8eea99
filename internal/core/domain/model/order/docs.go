// Package order provides domain entities and business logic for order
// management in the food ordering system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, pricing, and lifecycle
//   - Item: A catalog product reference plus a requested quantity, owned by one order
//   - Status: A state machine that enforces the kitchen workflow transitions
//   - RemainingTimeMessage: The pure calculator for preparation countdown messages
//
// Key business rules:
//   - Orders must have a valid unique identifier and a title
//   - Order status follows a fixed workflow:
//     Created -> Sent -> Received -> InPreparation -> Ready -> Finished
//   - The received-at timestamp is set exactly once, when the order first
//     becomes Received
//   - The total amount is computed from items, never supplied by callers
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
