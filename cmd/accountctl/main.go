// Command accountctl performs account administration that has no HTTP surface:
// applying the schema and granting privileged roles.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(fxBackend{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
