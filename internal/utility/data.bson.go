package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap converte um struct em map[string]interface{} via round-trip BSON,
// respeitando as tags bson dos models (omitempty, nomes de campo, etc.).
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
