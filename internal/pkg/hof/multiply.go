package hof

// Number is any integer or floating point kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Multiply returns a function that multiplies its argument by val.
//
//	Multiply(3)(5) // 15
func Multiply[T Number](val T) func(T) T {
	return func(x T) T {
		return x * val
	}
}
