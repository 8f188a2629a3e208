package qcircuit

import (
	"crypto/sha1"
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"reflect"
	"sort"
)

// A Tag is an opaque annotation attached to an operation for downstream
// consumers (routers, compilers, serializers); it never affects the
// operation's computational meaning. Although the qcircuit package could
// attach any type, we guard against accidental use of types by requiring them
// to implement this interface.
//
// Type-assert tags in order to access the actual type and its fields.
//
// Every tag must be content-addressable (see TagAddress): either through the
// reflection fallback over its exported fields, or by implementing
// TagAddresser itself.
type Tag interface {
	// tag is a no-op method that allows us to distinguish between types that
	// implement Tag and those that do not.
	//
	// it is unexported to prevent implementation by types outside this package -
	// instead, these types should embed the Annotation struct.
	tag()
}

// Annotation implements Tag in order to embed into user-defined types to
// explicitly implement Tag.
//
// Although embedding a Tag field is type-equivalent to embedding this type, an
// interface field takes up 2 words of memory, whereas a field of this type
// takes up 0 words of memory.
type Annotation struct{}

func (Annotation) tag() {}

// TagAddresser is the interface describing a tag that provides its own
// representation for hashing values based on their contents. A type that
// implements TagAddresser has complete control over the representation of its
// data and may therefore contain things such as private fields, channels, and
// functions, which the reflection fallback cannot hash.
//
// Note: Since consumers may persist or index tag hashes, it is good design to
// guarantee the hashing used by a TagAddresser is stable as the software
// evolves.
type TagAddresser interface {
	TagAddress(h hash.Hash) error
}

// TagAddress returns a TagHash for the given tag.
//
// If the tag implements TagAddresser, then the hash is computed using the
// tag's TagAddress method; otherwise, the hash is computed using a
// reflection-based algorithm that hashes the tag's exported fields
// (irrespective of their order).
//
// The hash is the tag's identity: two tags with the same TagHash are equal
// (see TagsEqual), so hashing and equality can never disagree for consumers
// that deduplicate or index tags by either.
//
// A tag-address should change if:
//
//   - the Go type changes its name
//   - the Go type moves between packages
//   - the Go type adds, removes or renames an exported field
//
// A tag-address should not change if the Go type reorders its exported
// fields.
func TagAddress(tag Tag) (TagHash, error) {
	h := newTagHash(tag)
	if x, ok := tag.(TagAddresser); ok {
		err := x.TagAddress(h)
		if err != nil {
			return TagHash{}, err
		}
	} else {
		err := reflectiveTagAddress(h, reflect.ValueOf(tag))
		if err != nil {
			return TagHash{}, err
		}
	}
	return TagHash(h.Sum(nil)), nil
}

// MustTagAddress is like TagAddress but panics on tags that cannot be hashed.
// Attaching an un-hashable tag violates the Tag contract, so the panic
// surfaces the developer error at the point of use.
func MustTagAddress(tag Tag) TagHash {
	h, err := TagAddress(tag)
	if err != nil {
		panic(fmt.Sprintf("qcircuit: un-hashable tag (type %T): %v", tag, err))
	}
	return h
}

// TagsEqual reports whether two tags are equal. Equality follows the content
// address, so it is consistent with TagAddress by construction.
func TagsEqual(a, b Tag) bool {
	return MustTagAddress(a) == MustTagAddress(b)
}

func reflectiveTagAddress(digest hash.Hash, tag reflect.Value) error {
	if tag.Kind() != reflect.Struct {
		panic("qcircuit: reflection-based tag-address supports only structs; got " + tag.Kind().String())
	}

	fields := reflect.VisibleFields(tag.Type())
	// sort fields by name to ensure a stable hash, regardless of the order in
	// which fields are defined in the struct.
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})

	for _, field := range fields {
		if !field.IsExported() {
			continue
		}

		// explicitly ignore embedded Annotation fields
		if field.Name == "Annotation" && field.Type == reflect.TypeOf(Annotation{}) {
			continue
		}

		// hash should be different if the field name changes
		digest.Write([]byte(field.Name))

		value := tag.FieldByIndex(field.Index)

		// look for a TagAddresser implementation
		if x, ok := value.Interface().(TagAddresser); ok {
			err := x.TagAddress(digest)
			if err != nil {
				return fmt.Errorf("tag-addresser field %s: %w", field.Name, err)
			}
			continue
		}

		// fast-path for types that implement encoding.BinaryMarshaler
		if x, ok := value.Interface().(encoding.BinaryMarshaler); ok {
			b, err := x.MarshalBinary()
			if err != nil {
				return fmt.Errorf("binary field %s: %w", field.Name, err)
			}
			digest.Write(b)
			continue
		}

		// unpack interfaces to their underlying values (if not nil interfaces)
		if value.Kind() == reflect.Interface {
			if value.IsNil() {
				// nil interfaces carry no attached type, so there is nothing to
				// hash; skip them.
				continue
			}
			value = value.Elem()
		}

		// unpack pointers to their underlying values. Since non-nil pointers
		// are hashed as their pointed-to values, nil pointers are hashed as
		// the zero-value of their pointed-to type.
		if value.Kind() == reflect.Ptr {
			if !value.IsNil() {
				value = value.Elem()
			} else {
				value = reflect.New(value.Type().Elem()).Elem()
			}
		}

		switch value.Kind() {
		case reflect.Struct:
			// directly recurse with reflection because we know by this point
			// that the field does not implement TagAddresser
			err := reflectiveTagAddress(digest, value)
			if err != nil {
				return fmt.Errorf("struct field %s: %w", field.Name, err)
			}
		case reflect.String:
			digest.Write([]byte(value.String()))
		case reflect.Int:
			// int is variable-size based on the architecture it is compiled
			// for, so to be consistent across architectures we convert to int64
			buf := make([]byte, binary.MaxVarintLen64)
			n := binary.PutVarint(buf, value.Int())
			digest.Write(buf[:n])
		case reflect.Uint:
			// uint is the unsigned counterpart of int, so we convert to uint64
			buf := make([]byte, binary.MaxVarintLen64)
			n := binary.PutUvarint(buf, value.Uint())
			digest.Write(buf[:n])
		case reflect.Bool, reflect.Float32, reflect.Float64,
			reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			// binary package handles fixed-size signed/unsigned integers,
			// floats and booleans
			err := binary.Write(digest, binary.BigEndian, value.Interface())
			if err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
		case reflect.Array, reflect.Slice:
			// fast-path for numeric slices and byte-arrays
			switch value.Type().Elem().Kind() {
			case reflect.Int:
				buf := make([]byte, binary.MaxVarintLen64)
				for i := 0; i < value.Len(); i++ {
					n := binary.PutVarint(buf, value.Index(i).Int())
					digest.Write(buf[:n])
				}
			case reflect.Uint:
				buf := make([]byte, binary.MaxVarintLen64)
				for i := 0; i < value.Len(); i++ {
					n := binary.PutUvarint(buf, value.Index(i).Uint())
					digest.Write(buf[:n])
				}
			case reflect.Bool, reflect.Float32, reflect.Float64,
				reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				// all slices of numeric types are encoded as big-endian
				err := binary.Write(digest, binary.BigEndian, value.Interface())
				if err != nil {
					return fmt.Errorf("slice field %s: %w", field.Name, err)
				}
			case reflect.String:
				for i := 0; i < value.Len(); i++ {
					digest.Write([]byte(value.Index(i).String()))
				}
			default:
				// all other slice types may or may not be hashable; recursing
				// here overcomplicates without a concrete use-case.
				return fmt.Errorf("field %s: unsupported slice of %v", field.Name, value.Type().Elem())
			}
		default:
			// all other value kinds are not supported
			return fmt.Errorf("field %s: unsupported %s %v", field.Name, value.Kind(), value.Type())
		}
	}

	return nil
}

// A TagHash is a consistent hash (i.e., content address) over a single tag's
// contents. It identifies the tag across processes: the same tag value
// produces the same TagHash wherever it is computed.
type TagHash tagDigest

func (h TagHash) MarshalText() ([]byte, error)     { return tagDigest(h).MarshalText() }
func (h *TagHash) UnmarshalText(text []byte) error { return (*tagDigest)(h).UnmarshalText(text) }
func (h TagHash) String() string                   { return "tag(" + tagDigest(h).String() + ")" }
func (h TagHash) IsZero() bool                     { return tagDigest(h).IsZero() }

// newTagHash returns a unique hash based on the type of the given tag.
// Callers are expected to write to the returned hash.Hash in order to compute
// the tag's content-address sum.
//
// The returned hash is guaranteed to completely fill a TagHash value.
func newTagHash(tag any) hash.Hash {
	h := sha1.New()
	t := reflect.TypeOf(tag) // type-preamble
	h.Write([]byte(t.PkgPath()))
	h.Write([]byte(t.Name()))
	return h
}

// A TagSetHash is a consistent hash over an ordered tag list. Tag lists are
// ordered and non-deduplicated, so the digest is order-sensitive: the same
// tags in a different order produce a different TagSetHash.
//
// It is defined as its own type to provide a compile-time guarantee against
// misuse of TagHash.
type TagSetHash tagDigest

func (h TagSetHash) MarshalText() ([]byte, error)     { return tagDigest(h).MarshalText() }
func (h *TagSetHash) UnmarshalText(text []byte) error { return (*tagDigest)(h).UnmarshalText(text) }
func (h TagSetHash) String() string                   { return "tags(" + tagDigest(h).String() + ")" }
func (h TagSetHash) IsZero() bool                     { return tagDigest(h).IsZero() }

// HashTags digests the given ordered tag list into a TagSetHash. It fails if
// any tag in the list cannot be hashed.
func HashTags(tags []Tag) (TagSetHash, error) {
	h := sha1.New()
	for i, tag := range tags {
		a, err := TagAddress(tag)
		if err != nil {
			return TagSetHash{}, fmt.Errorf("tag %d: %w", i, err)
		}
		h.Write(a[:])
	}
	return TagSetHash(h.Sum(nil)), nil
}

// tagDigest is a consistent hash primitive serving as the base for the
// strongly typed hashes TagHash and TagSetHash.
type tagDigest [sha1.Size]byte

func (h tagDigest) MarshalText() ([]byte, error) {
	text := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(text, h[:]) // always returns hex.EncodedLen(len(h)) (see hex.Encode)
	return text, nil
}

func (h *tagDigest) UnmarshalText(text []byte) error {
	n, err := hex.Decode(h[:], text)
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	if n != len(h) { // always n <= len(h[:]) (see hex.Decode)
		return fmt.Errorf("not enough bytes: %w", io.ErrUnexpectedEOF)
	}
	return nil
}

func (h tagDigest) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the zero value of the type.
func (h tagDigest) IsZero() bool {
	return h == tagDigest{}
}
