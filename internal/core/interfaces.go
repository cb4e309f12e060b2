package core

// Enumerator supplies the raw process facts for one scan cycle. The real
// implementation wraps the platform snapshot API; tests inject a fixed set.
type Enumerator interface {
	Processes() ([]ProcessRecord, error)
}

// SignatureVerifier is the external signature-verification service. The
// engine consumes its verdict as a signal; it never verifies anything itself.
type SignatureVerifier interface {
	Status(exePath string) SignatureStatus
}

// MetadataReader extracts embedded publisher/product strings from an
// executable, when present.
type MetadataReader interface {
	FileDescription(exePath string) string
	Company(exePath string) string
}
