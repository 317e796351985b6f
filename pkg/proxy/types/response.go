package types

// MessageResponse is the body of the liveness greeting endpoints.
type MessageResponse struct {
	// Message is a human-readable greeting.
	Message string `json:"message"`
}

// Descriptor is the error body shape used whenever there is no
// upstream body to relay verbatim: transport failures, undecodable
// upstream bodies, and request validation errors.
type Descriptor struct {
	// Description is the human-readable failure description.
	Description string `json:"description"`
}

// NewDescriptor creates a descriptor error body.
func NewDescriptor(description string) *Descriptor {
	return &Descriptor{Description: description}
}
