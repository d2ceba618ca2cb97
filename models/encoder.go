package models

import "time"

// Encoder represents a registry operator account used for authentication
// and authorization. Sensitive fields must never be exposed outside
// trusted boundaries.
type Encoder struct {
	// EncoderID is the internal unique identifier of the encoder.
	// It is not exposed via JSON and is used only at the persistence layer.
	EncoderID int64 `json:"-"`

	// Login is the unique encoder login identifier.
	Login string `json:"login"`

	// Name is the display name of the encoder.
	Name string `json:"name,omitempty"`

	// Password carries the plaintext password only on inbound register/login
	// requests. It is never persisted and never serialized back out.
	Password string `json:"password,omitempty"`

	// PasswordHash is the PHC-encoded argon2id digest of the password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is either "encoder" or "admin"; admins may manage accounts.
	Role string `json:"role,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Encoder model.
func (e Encoder) TableName() string {
	return "encoders"
}
