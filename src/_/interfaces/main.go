// Package interfaces declares the dependency-free interfaces shared across
// tiers. Nothing in this package may import another package in this module.
package interfaces

type Stringer interface {
	String() string
}

type Ptr[T any] interface {
	*T
}

type Resetable interface {
	Reset()
}

type ResetablePtr[T any] interface {
	Ptr[T]
	Resetable
}
