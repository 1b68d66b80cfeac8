package responses

type ErrorResponse struct {
	Code   string            `json:"code"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type GeneralResponse[T any] struct {
	Status string `json:"status"`
	Result T      `json:"result"`
}

type ListResponse[T any] struct {
	Status string `json:"status"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Pages  int    `json:"pages"`
	Total  int    `json:"total"`
	Items  []T    `json:"items"`
}

const ResponseCodeOk = "000000"

func OK[T any](result T) GeneralResponse[T] {
	return GeneralResponse[T]{Status: ResponseCodeOk, Result: result}
}
