package source

import "encoding/json"

// JSON returns a DecodeFunc that unmarshals items from JSON.
func JSON[T any]() DecodeFunc[T] {
	return func(data []byte) (T, error) {
		var item T
		err := json.Unmarshal(data, &item)
		return item, err
	}
}
