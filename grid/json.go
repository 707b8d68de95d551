package grid

import "encoding/json"

// UnmarshalJSON decodes a JSON array of equal-length arrays into g.
// A ragged input is rejected with ErrNonRectangular.
func (g *Grid[T]) UnmarshalJSON(data []byte) error {
	var rows [][]T
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	parsed, err := New(rows)
	if err != nil {
		return err
	}
	*g = *parsed

	return nil
}
