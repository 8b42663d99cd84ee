// serializer.go -- Serializer[T] collaborator
//
// (c) Sudhi Herle 2018 (teacher), adapted 2026
//
// License GPLv2

package perfect

// Serializer turns a domain value into the byte sequence that
// Perfectionist's murmur3 family and isInjective hash over. See spec.md
// §6 ("Serializer over T: serialize(T, byteSink)").
type Serializer[T any] interface {
	Serialize(v T) []byte
}

// SerializerFunc adapts a plain function to the Serializer interface.
type SerializerFunc[T any] func(v T) []byte

func (f SerializerFunc[T]) Serialize(v T) []byte { return f(v) }

// StringSerializer serializes a string as its UTF-8 bytes. This is the
// "writeChars" serializer named in spec.md §8, scenario 3.
func StringSerializer() Serializer[string] {
	return SerializerFunc[string](func(v string) []byte { return []byte(v) })
}

// FirstByteSerializer serializes a string to its first byte only. This is
// the "writeChar(first)" serializer of spec.md §8, scenario 4 - it is
// deliberately non-injective over domains that share a first character.
func FirstByteSerializer() Serializer[string] {
	return SerializerFunc[string](func(v string) []byte {
		if len(v) == 0 {
			return nil
		}
		return []byte{v[0]}
	})
}

// intSerializer serializes an int as 4 big-endian bytes. BMZ uses it
// internally to build h1/h2 over the big-hash values it derives from the
// base perfect hasher (spec.md §4.4: "h1 and h2 ... independently seeded
// 32-bit integer hashes").
type intSerializer struct{}

func (intSerializer) Serialize(v int) []byte {
	return []byte{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}
}
