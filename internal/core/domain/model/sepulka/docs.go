// Package sepulka provides the order aggregate of the service: the Sepulka
// root, its Process and Delivery sub-records and the append-only Flow log.
//
// The package includes:
//   - Sepulka: the aggregate root that owns identity, attributes and State
//   - Process / Delivery: one-to-one stages created together with the order
//   - Flow: append-only messages attached to an order
//   - State, Size, Method: validated value types
//
// Key business rules:
//   - Only a Shmurdik can be the creator of an order
//   - The process responsible must be a Grymzik, the delivery responsible a Fufelnitsa
//   - Each operation changes only its own fields, so concurrent edits of
//     process and delivery do not clobber each other
//   - State is derived from the sub-records and never moves backwards
//   - Deletion is logical; a deleted order rejects further mutations
package sepulka
