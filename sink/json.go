package sink

import "encoding/json"

// JSON returns an EncodeFunc that marshals items to JSON.
func JSON[T any]() EncodeFunc[T] {
	return func(item T) ([]byte, error) {
		return json.Marshal(item)
	}
}
