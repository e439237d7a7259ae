// Package structs implements generic vectors of serializable elements, and
// their length-prefixed serialization.
package structs

// CopyNewer is implemented by objects that can return a deep copy of themselves.
type CopyNewer[V any] interface {
	CopyNew() V
}

// BinarySizer is implemented by objects that know their serialized size.
type BinarySizer interface {
	BinarySize() int
}
