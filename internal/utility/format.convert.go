package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID converte uma string hex em ObjectID.
// Retorna NilObjectID quando a string é inválida.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

// ObjectID2String converte um ObjectID em string hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}
