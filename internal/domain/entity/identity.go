package entity

// Identity is a caller verified by the identity provider.
type Identity struct {
	Subject  string `json:"subject"` // Stable user id issued by the provider
	Email    string `json:"email,omitempty"`
	Provider string `json:"provider"`
}
