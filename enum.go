package waypoint

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
type Enumerable interface {
	String() string
	Valid() error
}

var (
	_ Enumerable = Code(0)
	_ Enumerable = Environment("")
)
