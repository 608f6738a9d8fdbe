package errdefer_test

import (
	"fmt"
	"io"
	"os"

	"go.abhg.dev/attview/internal/errdefer"
)

// readHead reads up to n bytes from the start of a file.
func readHead(name string, n int64) (_ []byte, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer errdefer.Close(&err, f)
	// NOTE: err must be a named return.

	return io.ReadAll(io.LimitReader(f, n))
}

func ExampleClose() {
	head, err := readHead("example_test.go", 21)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(head))
	// Output: package errdefer_test
}
