package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "azucar", foldAccents("azúcar"))
	assert.Equal(t, "ARROZ ANEJO", foldAccents("ARROZ AÑEJO"))
	assert.Equal(t, "sin cambios", foldAccents("sin cambios"))
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%cafe%", searchPattern("  café "))
	assert.Equal(t, `%100\%%`, searchPattern("100%"), "el comodín se escapa")
	assert.Equal(t, `%a\_b%`, searchPattern("a_b"))
}

func TestCondBuilder(t *testing.T) {
	var b condBuilder
	assert.Empty(t, b.where(), "sin condiciones no hay WHERE")

	b.cond("num = " + b.arg(int64(42)))
	b.cond("fecha >= " + b.arg("2026-01-01"))

	assert.Equal(t, " WHERE num = $1 AND fecha >= $2", b.where())
	assert.Equal(t, []any{int64(42), "2026-01-01"}, b.args)
}
