package codec

// Codec transforms text between its plain and its encoded representation.
// Implementations are stateless and safe for concurrent use.
type Codec interface {
	// Name is the identifier under which the codec is registered, e.g. "base64"
	Name() string

	// Description is a short, user-friendly summary of the scheme
	Description() string

	// Encode will take a string and produce its encoded representation.
	// Encoding well-formed text never fails.
	Encode(text string) string

	// Decode is the reverse process of encoding
	Decode(encoded string) (string, error)

	// Return a list of test patterns for the specified codec
	TestPatterns() []string
}
