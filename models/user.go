package models

// User represents a storefront account used for authentication and as the
// owner of orders. It contains identity attributes and credential data.
//
// The Password field is dual-purpose: on inbound create/authenticate requests
// it carries the plaintext password, while every stored or outbound
// representation carries the bcrypt digest instead. Plaintext never leaves
// the service layer.
type User struct {
	// ID is the externally assigned unique identifier of the user
	// (e.g. "april_serra"). It is chosen by the caller, not the store.
	ID string `json:"id"`

	// FirstName is the user's given name. Must be non-empty.
	FirstName string `json:"firstName"`

	// LastName is the user's family name. Must be non-empty.
	LastName string `json:"lastName"`

	// Password holds the plaintext password on input and the bcrypt
	// digest (password+pepper) on output.
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
