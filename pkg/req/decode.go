package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// maxBodySize ограничение на размер тела запроса
const maxBodySize = 1 << 20

// Decode декодирует JSON тело запроса в T. Неизвестные поля запрещены.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, errors.New("empty request body")
		}
		return payload, fmt.Errorf("invalid json: %w", err)
	}

	return payload, nil
}
