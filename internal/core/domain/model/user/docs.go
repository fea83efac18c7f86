// Package user provides the User entity and the Role model of the sepulka
// service.
//
// The package includes:
//   - User: an account with credentials, one Role and a staff flag
//   - Role: the mutually exclusive workflow role (Fufelnitsa, Grymzik, Shmurdik)
//   - HasRole / RequireRole: the role primitives used by the permission
//     evaluator and by the order aggregate
//
// Key business rules:
//   - A user has exactly one role; Fufelnitsa is the default
//   - Staff is orthogonal to role and is never set through profile updates
//   - Usernames are unique, at most 150 characters of letters, digits and @.+-_
package user
