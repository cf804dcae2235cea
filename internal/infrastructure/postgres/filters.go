package postgres

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// condBuilder acumula condiciones WHERE parametrizadas. Los repositorios lo
// usan para armar listados filtrados sin concatenar valores en el SQL.
type condBuilder struct {
	conds []string
	args  []any
}

// arg registra un valor y devuelve su placeholder ($1, $2, ...).
func (b *condBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// cond agrega una condición ya parametrizada con arg().
func (b *condBuilder) cond(expr string) {
	b.conds = append(b.conds, expr)
}

// where devuelve la cláusula WHERE completa o cadena vacía si no hay filtros.
func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// foldAccents elimina diacríticos (NFD + quitar marcas + NFC) para que la
// búsqueda no distinga "azúcar" de "azucar". El lado SQL usa unaccent().
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// searchPattern normaliza el término de búsqueda y lo envuelve para ILIKE.
// Escapa los comodines de LIKE para que un "%" literal no amplíe la búsqueda.
func searchPattern(term string) string {
	term = foldAccents(strings.TrimSpace(term))
	term = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + term + "%"
}
