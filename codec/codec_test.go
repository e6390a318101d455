package codec

// codecTests are inputs every scheme must round-trip: empty text, plain
// ASCII, scheme-special characters and multi-byte Unicode.
var codecTests = []string{
	"",
	"Hello, World!",
	"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ 0129",
	"special & <chars> \"quoted\" 'single' %20 +~",
	"Želva 🐢 přeběhla über die Straße",
	"\x00\x01\x02\x7f",
}
