package keys

// Backend is one curve/signature family the vault can hold key material
// for. Implementations are stateless pure functions of their inputs and
// safe for concurrent use.
type Backend interface {
	// Name identifies the backend in config, logs and metric labels.
	Name() string

	// Generate returns fresh raw key material from a cryptographically
	// secure random source. There is no deterministic or seeded path.
	Generate() ([]byte, error)

	// MaterialSize is the exact byte length of raw key material.
	MaterialSize() int

	// Address derives the public wallet address for raw key material.
	Address(material []byte) (string, error)

	// ValidateKey reports whether an encoded private key is well formed.
	ValidateKey(s string) bool

	// ValidateAddress reports whether an encoded address is well formed.
	ValidateAddress(s string) bool
}

// Importer is implemented by backends that accept externally supplied
// secrets. The account-key backend intentionally does not: custody there is
// fresh-key-only.
type Importer interface {
	// Import normalizes an external secret into raw key material.
	Import(secret []byte) ([]byte, error)
}

// ForName returns the backend registered under name, or nil.
func ForName(name string) Backend {
	switch name {
	case "secp256k1":
		return AccountKey{}
	case "ed25519":
		return SigningKeypair{}
	}
	return nil
}
