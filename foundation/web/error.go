package web

// Error carries an HTTP status alongside the underlying cause. Repositories
// return it so the controller layer never has to guess a status code.
type Error struct {
	Err    error
	Status int
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError wraps err with the status the caller should receive.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}
