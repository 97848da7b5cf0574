// Package config provides a generic key/value configuration tree with
// typed accessors, merged from map, YAML and environment sources.
//
// Integer values may be written as $() expressions evaluated over the
// tree's own integer scalars, and byte sizes additionally accept
// humanized forms like "64KiB".
package config

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-viper/mapstructure/v2"
)

// Config is a merged configuration tree with typed accessors.
type Config struct {
	tree Map
}

// Load merges the sources in order into one configuration. Later sources
// override earlier ones.
func Load(sources ...Source) (cfg *Config, err error) {
	tree := Map{}
	for _, source := range sources {
		err = source.Apply(tree)
		if err != nil {
			return
		}
	}
	cfg = &Config{tree: tree}
	return
}

// String returns the string at a dotted path.
func (cfg *Config) String(path string) (value string, ok bool) {
	v, ok := cfg.tree.Get(path)
	if !ok {
		return
	}
	value, ok = v.(string)
	return
}

// Bool returns the boolean at a dotted path. String values are parsed.
func (cfg *Config) Bool(path string) (value bool, ok bool) {
	v, ok := cfg.tree.Get(path)
	if !ok {
		return
	}
	switch x := v.(type) {
	case bool:
		value = x
	case string:
		var err error
		value, err = strconv.ParseBool(x)
		ok = err == nil
	default:
		ok = false
	}
	return
}

// Int returns the integer at a dotted path. String values may be numeric
// literals or $() expressions over the tree's integer scalars.
func (cfg *Config) Int(path string) (value int64, ok bool) {
	v, ok := cfg.tree.Get(path)
	if !ok {
		return
	}
	value, err := cfg.intOf(v)
	ok = err == nil
	return
}

// Size returns the byte count at a dotted path. String values may be
// numeric literals, $() expressions, or humanized sizes like "64KiB".
func (cfg *Config) Size(path string) (value int64, ok bool) {
	v, ok := cfg.tree.Get(path)
	if !ok {
		return
	}
	value, err := cfg.sizeOf(v)
	ok = err == nil
	return
}

func (cfg *Config) intOf(v any) (value int64, err error) {
	switch x := v.(type) {
	case int:
		value = int64(x)
	case int64:
		value = x
	case uint64:
		value = int64(x)
	case string:
		if expr, ok := exprOf(x); ok {
			value, err = Eval(expr, cfg.integers())
			return
		}
		value, err = strconv.ParseInt(x, 0, 64)
	default:
		err = ErrValueInvalid
	}
	return
}

func (cfg *Config) sizeOf(v any) (value int64, err error) {
	s, ok := v.(string)
	if !ok {
		return cfg.intOf(v)
	}
	if _, ok = exprOf(s); ok {
		return cfg.intOf(v)
	}
	if value, err = strconv.ParseInt(s, 0, 64); err == nil {
		return
	}

	parsed, err := humanize.ParseBytes(s)
	if err != nil {
		err = ErrValueInvalid
		return
	}
	value = int64(parsed)
	return
}

// integers flattens the tree's integer scalars into expression bindings,
// joining nested keys with underscores.
func (cfg *Config) integers() (bindings map[string]int64) {
	bindings = map[string]int64{}

	var walk func(node Map, prefix string)
	walk = func(node Map, prefix string) {
		for key, v := range node {
			name := key
			if prefix != "" {
				name = prefix + "_" + key
			}
			switch x := v.(type) {
			case Map:
				walk(x, name)
			case map[string]any:
				walk(Map(x), name)
			case int:
				bindings[name] = int64(x)
			case int64:
				bindings[name] = x
			}
		}
	}
	walk(cfg.tree, "")
	return
}

// Unmarshal decodes the tree into a struct tagged with `config`. String
// values decode through any encoding.TextUnmarshaler target, $()
// expressions and humanized sizes decode into integer fields.
func (cfg *Config) Unmarshal(v any) (err error) {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			cfg.exprHook(),
			cfg.sizeHook(),
		),
	})
	if err != nil {
		return
	}
	return dec.Decode(map[string]any(cfg.tree))
}

func (cfg *Config) exprHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || !isInteger(to.Kind()) {
			return data, nil
		}
		expr, ok := exprOf(data.(string))
		if !ok {
			return data, nil
		}
		return Eval(expr, cfg.integers())
	}
}

func (cfg *Config) sizeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || !isInteger(to.Kind()) {
			return data, nil
		}
		s := data.(string)
		if !strings.ContainsAny(s, "KMGTkmgt") {
			return data, nil
		}
		value, err := humanize.ParseBytes(s)
		if err != nil {
			return data, nil
		}
		return value, nil
	}
}

func isInteger(kind reflect.Kind) (ok bool) {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ok = true
	}
	return
}
