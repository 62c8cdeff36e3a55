package catalog

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Resource is one independently tracked piece of cached data.
type Resource[T any] struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   T      `json:"data"`
}

func idle[T any]() Resource[T] {
	return Resource[T]{Status: StatusIdle}
}

func (r Resource[T]) loading() Resource[T] {
	return Resource[T]{Status: StatusLoading, Data: r.Data}
}

func (r Resource[T]) succeeded(data T) Resource[T] {
	return Resource[T]{Status: StatusSuccess, Data: data}
}

// failed keeps the previous data so stale results stay visible.
func (r Resource[T]) failed(message string) Resource[T] {
	return Resource[T]{Status: StatusError, Error: message, Data: r.Data}
}
