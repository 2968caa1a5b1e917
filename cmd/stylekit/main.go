package main

import (
	"errors"
	"fmt"
	"os"

	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps configuration and parse failures to 2 and everything else
// to 1.
func exitCode(err error) int {
	var parseErr *skerrors.ParseError
	if errors.Is(err, skerrors.ErrConfig) || errors.As(err, &parseErr) {
		return 2
	}
	return 1
}
