package storefront

import "encoding/json"

func marshalString(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalString(raw string, v any) error {
	return json.Unmarshal([]byte(raw), v)
}
