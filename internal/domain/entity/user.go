// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is a customer account. The ID is assigned by the store and exposed
// as a hex token. Password is an opaque string compared by equality during
// authentication and excluded from every other read path.
type User struct {
	ID                string // Store-assigned identifier (hex token).
	Name              string // Display name.
	Email             string // Login identifier, unique across all users.
	CPF               string // National tax id.
	Password          string // Opaque credential; never serialized outward.
	CreationTimestamp string // Human-readable date+time, set at create.
	UpdatedTimestamp  string // Human-readable date+time, set at each update.
}

// Credentials is the projection used by the authentication check. It is the
// only read path allowed to carry the password out of the store.
type Credentials struct {
	Email    string
	Password string
}
