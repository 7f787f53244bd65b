package model

// SignatureVerifier verifies a signature made by the owner of publicKey over message.
// Implementations must be deterministic and side-effect free.
type SignatureVerifier interface {
	Verify(publicKey []byte, message []byte, signature []byte) bool
}
