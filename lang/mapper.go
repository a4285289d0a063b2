package lang

// Mapper converts a resolved raw value to an application type.
// Implementations for common types live in package mapper.
type Mapper[T any] func(Value) (T, error)
