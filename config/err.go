package config

import (
	"errors"

	"github.com/ezrec/chario/translate"
)

var f = translate.From

var (
	// Accessor errors
	ErrValueInvalid = errors.New(f("value invalid"))
)

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrYaml struct {
	Err error
}

func (err ErrYaml) Error() string {
	return f("yaml %v", err.Err)
}

func (err ErrYaml) Unwrap() error {
	return err.Err
}
