package entity

import "encoding/json"

// List-valued columns (genres, showtimes, seats) are stored as JSON text.

// EncodeList serializes a string list for a text column. A nil list encodes
// as an empty JSON array, never as SQL NULL.
func EncodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeList parses a JSON text column back into a string list.
func DecodeList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
