package codec

// Registry maps scheme identifiers to codecs, keeping a fixed display order.
// A registry is built once and never mutated afterwards, so it is safe for
// concurrent use.
type Registry struct {
	order  []string
	codecs map[string]Codec
}

// NewRegistry builds a registry over the given codecs. Listing order follows
// the argument order.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{
		order:  make([]string, 0, len(codecs)),
		codecs: make(map[string]Codec, len(codecs)),
	}
	for _, c := range codecs {
		r.order = append(r.order, c.Name())
		r.codecs[c.Name()] = c
	}
	return r
}

// std holds the fixed set of supported schemes. The order here is the order
// `list` prints them in.
var std = NewRegistry(
	&Base64Codec{},
	&Base32Codec{},
	&HexCodec{},
	&UrlCodec{},
	&HtmlCodec{},
	&Rot13Codec{},
	&Ascii85Codec{},
	&BinaryCodec{},
	&OctalCodec{},
)

// Default returns the registry of all supported schemes.
func Default() *Registry {
	return std
}

// Names returns the registered identifiers in display order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// List returns the registered codecs in display order.
func (r *Registry) List() []Codec {
	list := make([]Codec, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.codecs[name])
	}
	return list
}

// Lookup resolves a scheme identifier. Unknown identifiers yield
// ErrUnknownScheme naming the valid set.
func (r *Registry) Lookup(scheme string) (Codec, error) {
	if c, ok := r.codecs[scheme]; ok {
		return c, nil
	}
	return nil, &ErrUnknownScheme{
		Scheme: scheme,
		Known:  r.Names(),
	}
}

// Encode transforms text with the named scheme.
func (r *Registry) Encode(text, scheme string) (string, error) {
	c, err := r.Lookup(scheme)
	if err != nil {
		return "", err
	}
	return c.Encode(text), nil
}

// Decode reverses the named scheme's encoding.
func (r *Registry) Decode(encoded, scheme string) (string, error) {
	c, err := r.Lookup(scheme)
	if err != nil {
		return "", err
	}
	return c.Decode(encoded)
}

// Encode transforms text with the named scheme from the default registry.
func Encode(text, scheme string) (string, error) {
	return std.Encode(text, scheme)
}

// Decode reverses the named scheme's encoding using the default registry.
func Decode(encoded, scheme string) (string, error) {
	return std.Decode(encoded, scheme)
}

// List returns all supported codecs in display order.
func List() []Codec {
	return std.List()
}
