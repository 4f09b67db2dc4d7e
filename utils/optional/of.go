package optional

import (
	"bytes"
	"database/sql"
	"database/sql/driver"

	jsoniter "github.com/json-iterator/go"
)

// Of 値が存在しないことを表現できる型
//
// JSONではnullと相互変換され、DBではNULLと相互変換されます
type Of[T any] struct {
	V     T
	Valid bool
}

// New Ofを生成します
func New[T any](v T, valid bool) Of[T] {
	return Of[T]{V: v, Valid: valid}
}

// From 値が存在するOfを生成します
func From[T any](v T) Of[T] {
	return New(v, true)
}

// FromPtr ポインタからOfを生成します。nilの場合は値が存在しません
func FromPtr[T any](v *T) Of[T] {
	if v == nil {
		return Of[T]{}
	}
	return From(*v)
}

// ValueOrZero 値が存在する場合はその値を、存在しない場合はゼロ値を返します
func (o Of[T]) ValueOrZero() T {
	if o.Valid {
		return o.V
	}
	var zero T
	return zero
}

// Ptr 値が存在する場合はそのポインタを、存在しない場合はnilを返します
func (o Of[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.V
	return &v
}

func (o Of[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return jsoniter.ConfigFastest.Marshal(o.V)
}

func (o *Of[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.V, o.Valid = zero, false
		return nil
	}
	if err := jsoniter.ConfigFastest.Unmarshal(data, &o.V); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler interface.
//
// 空文字列は値が存在しないものとして扱います
func (o *Of[T]) UnmarshalParam(param string) error {
	if p, ok := any(&o.V).(*string); ok {
		*p, o.Valid = param, param != ""
		return nil
	}
	if param == "" || param == "null" {
		var zero T
		o.V, o.Valid = zero, false
		return nil
	}
	if err := jsoniter.ConfigFastest.UnmarshalFromString(param, &o.V); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Scan implements sql.Scanner interface.
func (o *Of[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err
	}
	o.V, o.Valid = n.V, n.Valid
	return nil
}

// Value implements driver.Valuer interface.
func (o Of[T]) Value() (driver.Value, error) {
	return sql.Null[T]{V: o.V, Valid: o.Valid}.Value()
}
