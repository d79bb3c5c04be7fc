package tools

import (
	"os"

	"github.com/pkg/errors"
)

func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

func PanicOnError[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}
