package main

import (
	"errors"
	"fmt"
	"os"

	rumboerrors "github.com/appnotresponding/rumbo/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var snapErr *rumboerrors.SnapshotError
		if errors.As(err, &snapErr) {
			fmt.Fprint(os.Stderr, snapErr.Diff)
		}
		if !errors.Is(err, errInvalidValue) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
