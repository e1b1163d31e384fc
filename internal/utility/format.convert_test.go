package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	valid := primitive.NewObjectID()
	assert.Equal(t, valid, String2ObjectID(valid.Hex()))

	// Entrada inválida vira NilObjectID; quem chama decide pelo IsZero
	tests := []struct {
		name string
		in   string
	}{
		{"vazio", ""},
		{"hex curto", "abc123"},
		{"não-hex", "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{"hex longo demais", valid.Hex() + "ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String2ObjectID(tt.in)
			assert.True(t, got.IsZero())
			assert.Equal(t, primitive.NilObjectID, got)
		})
	}
}

func TestObjectID2String_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(ObjectID2String(id)))
}
