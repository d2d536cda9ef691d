package ranges

var (
	ErrInvalidOperation = &RangeError{"invalid range operation"}
)

type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string {
	return e.Msg
}

func (e *RangeError) Is(target error) bool {
	if targetErr, ok := target.(*RangeError); ok {
		return e.Msg == targetErr.Msg
	}
	return false
}
