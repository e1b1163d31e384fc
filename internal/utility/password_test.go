package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("senha-forte-123")
	require.NoError(t, err)
	require.NotEqual(t, "senha-forte-123", hash)

	// O retorno é booleano: true só quando a senha bate com o hash
	assert.True(t, CheckPassword(hash, "senha-forte-123"))
	assert.False(t, CheckPassword(hash, "senha-errada"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("", "senha-forte-123"))
	assert.False(t, CheckPassword("não é um hash bcrypt", "senha-forte-123"))
}

func TestHashPassword_HashesDistintos(t *testing.T) {
	h1, err := HashPassword("mesma-senha")
	require.NoError(t, err)
	h2, err := HashPassword("mesma-senha")
	require.NoError(t, err)

	// Salt aleatório: hashes diferentes, ambos válidos para a mesma senha
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword(h1, "mesma-senha"))
	assert.True(t, CheckPassword(h2, "mesma-senha"))
}
