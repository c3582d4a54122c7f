package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/arithlex/lexer"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case lexer.Token:
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("kind"), starlark.String(v.Kind.String()))
		d.SetKey(starlark.String("start"), starlark.MakeInt(v.Span.Start))
		d.SetKey(starlark.String("end"), starlark.MakeInt(v.Span.End))
		d.SetKey(starlark.String("text"), starlark.String(v.Span.Text))
		return d

	case lexer.TokenKind:
		return starlark.String(v.String())

	case []byte:
		return starlark.Bytes(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

var scanBuiltin = starlark.NewBuiltin("scan", func(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error) {
	var source string
	var anchorEnd bool
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "source", &source, "anchor_end?", &anchorEnd); err != nil {
		return nil, err
	}
	var options []lexer.Option
	if anchorEnd {
		options = append(options, lexer.AnchorEndOfInput())
	}
	return toStarlarkValue(lexer.Scan(source, options...)), nil
})

var valueBuiltin = starlark.NewBuiltin("value", func(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error) {
	var literal string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &literal); err != nil {
		return nil, err
	}
	token := lexer.Token{
		Kind: lexer.TokenNumber,
		Span: lexer.Span{End: len(literal), Text: literal},
	}
	d, err := token.Decimal()
	if err != nil {
		return nil, err
	}
	return starlark.String(d.String()), nil
})
