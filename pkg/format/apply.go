package format

// Apply runs a value through a chain of formatting transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable formatting pipeline from individual transforms.
// Preferred over repeated Apply calls when the same chain is used in several
// places.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
