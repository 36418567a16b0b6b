package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Execer é satisfeito por *sqlx.DB e *sqlx.Tx.
type Execer interface {
	Rebind(query string) string
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Mutation monta um UPDATE só com os campos informados. A ordem das
// cláusulas é a ordem das chamadas a Set; a chave é sempre o último argumento.
type Mutation struct {
	table   string
	key     any
	columns []string
	args    []any
	err     error
}

func NewUpdate(table string, key any) *Mutation {
	m := &Mutation{table: table, key: key}
	if !identifierPattern.MatchString(table) {
		m.err = fmt.Errorf("nome de tabela inválido: %q", table)
	}
	return m
}

// Set adiciona "column = ?". Listas e mapas viram texto JSON.
func (m *Mutation) Set(column string, value any) *Mutation {
	if m.err != nil {
		return m
	}
	if !identifierPattern.MatchString(column) || column == "updated_at" {
		m.err = fmt.Errorf("coluna inválida: %q", column)
		return m
	}

	v, err := storageValue(value)
	if err != nil {
		m.err = fmt.Errorf("coluna %s: %w", column, err)
		return m
	}
	m.columns = append(m.columns, column)
	m.args = append(m.args, v)
	return m
}

// SetPatch percorre os campos ponteiro de um struct com tag `db`; os nil são
// ignorados. É a tabela declarativa campo -> coluna de cada entidade.
func (m *Mutation) SetPatch(patch any) *Mutation {
	if m.err != nil {
		return m
	}

	rv := reflect.ValueOf(patch)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return m
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		m.err = fmt.Errorf("patch deve ser struct, recebido %T", patch)
		return m
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		column := field.Tag.Get("db")
		if column == "" || column == "-" || !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() != reflect.Pointer || fv.IsNil() {
			continue
		}
		m.Set(column, fv.Elem().Interface())
	}
	return m
}

func (m *Mutation) Len() int {
	return len(m.columns)
}

// Build devolve a query com placeholders "?" e os argumentos na mesma ordem.
func (m *Mutation) Build(now time.Time) (string, []any, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	if len(m.columns) == 0 {
		return "", nil, ErrNoFields
	}

	clauses := make([]string, 0, len(m.columns)+1)
	for _, c := range m.columns {
		clauses = append(clauses, c+" = ?")
	}
	clauses = append(clauses, "updated_at = ?")

	args := make([]any, 0, len(m.args)+2)
	args = append(args, m.args...)
	args = append(args, now.UTC(), m.key)

	query := "UPDATE " + m.table + " SET " + strings.Join(clauses, ", ") + " WHERE id = ?"
	return query, args, nil
}

// Exec roda o UPDATE. Sem campos, nada é enviado ao banco e volta ErrNoFields;
// nenhuma linha afetada vira ErrNotFound.
func (m *Mutation) Exec(ctx context.Context, db Execer) error {
	query, args, err := m.Build(time.Now())
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar %s: %w", m.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao atualizar %s: %w", m.table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func storageValue(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	if _, ok := value.(driver.Valuer); ok {
		return value, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if b, ok := value.([]byte); ok {
			return b, nil
		}
		if rv.IsNil() && rv.Kind() == reflect.Slice {
			return "[]", nil
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return string(encoded), nil
	}
	return value, nil
}
