package feedonomics

// Result is the uniform outcome of every remote operation. Operations never
// return Go errors; expected failures are reported through the envelope.
//
// Success implies Error is empty; failure implies Data is the zero value and
// Error is set. Status is the HTTP status code when one was received, 0
// otherwise.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
}

func ok[T any](data T, status int) Result[T] {
	return Result[T]{Success: true, Data: data, Status: status}
}

func fail[T any](msg string, status int) Result[T] {
	return Result[T]{Success: false, Error: msg, Status: status}
}

// failureFrom copies a failed result into a result of another payload type,
// preserving message and status.
func failureFrom[T, U any](r Result[U]) Result[T] {
	return Result[T]{Success: false, Error: r.Error, Status: r.Status}
}
