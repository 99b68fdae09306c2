package eval

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/maxjmartin/Olly/internal/value"
)

// mapToJSON and jsonToValue implement MAPJSON/JSONMAP (spec §5.9): Oliver
// carries no static schema, so unlike a typical Go JSON boundary this walks
// the tagged Value union by hand instead of round-tripping through
// encoding/json struct tags, building the document incrementally with
// sjson.SetRaw and reading it back with gjson.Parse.
func mapToJSON(v value.Value) value.Value {
	doc, err := toJSONRaw("", v)
	if err != nil {
		return value.NewError("Invalid json encoding.")
	}
	return value.NewString(doc)
}

func jsonToValue(v value.Value) value.Value {
	s, ok := v.(value.String)
	if !ok {
		return value.NewError("Invalid json source.")
	}
	if !gjson.Valid(s.Text) {
		return value.NewError("Invalid json source.")
	}
	return fromJSONResult(gjson.Parse(s.Text))
}

// toJSONRaw renders v into the JSON document rooted at doc, recursing
// through Map/List/Expression the way sjson builds a document one path at
// a time rather than all at once.
func toJSONRaw(doc string, v value.Value) (string, error) {
	switch t := v.(type) {
	case value.Nothing:
		return setRoot(doc, "null")

	case value.Boolean:
		return setRoot(doc, strconv.FormatBool(t.Is()))

	case value.Number:
		if t.IsDecimal() || t.IsInteger() {
			return setRoot(doc, t.String())
		}
		return sjson.Set(doc, "", t.String())

	case value.String:
		return sjson.Set(doc, "", t.Text)

	case value.Symbol:
		return sjson.Set(doc, "", t.Name)

	case value.Map:
		out := "{}"
		for _, kv := range t.Entries() {
			sub, err := toJSONRaw("", kv[1])
			if err != nil {
				return "", err
			}
			out, err = sjson.SetRaw(out, kv[0].String(), sub)
			if err != nil {
				return "", err
			}
		}
		return setRoot(doc, out)

	case value.List:
		return seqToJSON(doc, t.Len(), func(i int) value.Value { return indexSeq(t, i) })

	case value.Expression:
		return seqToJSON(doc, t.Len(), func(i int) value.Value { return indexSeq(t, i) })

	default:
		return sjson.Set(doc, "", v.String())
	}
}

func indexSeq(v value.Value, i int) value.Value {
	a := v.(value.Associative)
	return a.Get(value.NewInt(int64(i)))
}

func seqToJSON(doc string, n int, at func(int) value.Value) (string, error) {
	out := "[]"
	var err error
	for i := 0; i < n; i++ {
		var sub string
		sub, err = toJSONRaw("", at(i))
		if err != nil {
			return "", err
		}
		out, err = sjson.SetRaw(out, strconv.Itoa(i), sub)
		if err != nil {
			return "", err
		}
	}
	return setRoot(doc, out)
}

func setRoot(doc, raw string) (string, error) {
	if doc == "" {
		return raw, nil
	}
	return sjson.SetRaw(doc, "", raw)
}

// fromJSONResult converts a parsed gjson.Result into Oliver values, objects
// becoming Map and arrays becoming List (spec §5.9's JSONMAP contract).
func fromJSONResult(r gjson.Result) value.Value {
	switch {
	case r.IsObject():
		m := value.NewMap()
		r.ForEach(func(key, val gjson.Result) bool {
			m = m.Set(value.NewSymbol(key.String()), fromJSONResult(val)).(value.Map)
			return true
		})
		return m

	case r.IsArray():
		items := []value.Value{}
		r.ForEach(func(_, val gjson.Result) bool {
			items = append(items, fromJSONResult(val))
			return true
		})
		return value.NewList(items...)

	case r.Type == gjson.Null:
		return value.Nil

	case r.Type == gjson.True, r.Type == gjson.False:
		return value.NewBoolean(r.Bool())

	case r.Type == gjson.Number:
		return value.ParseNumber(r.Raw)

	default:
		return value.NewString(r.String())
	}
}
