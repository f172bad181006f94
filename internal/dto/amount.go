package dto

import (
	"bytes"
	"encoding/json"

	"github.com/GlebRadaev/piggybank/pkg/validate"
)

// Amount accepts a JSON number or numeric string and holds whole currency
// units. Fractions are floored; anything non-positive fails to decode.
type Amount int64

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	n, err := validate.ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = Amount(n)
	return nil
}

func (a Amount) Int64() int64 {
	return int64(a)
}
