package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests run from the project root so logs/ and sqlite files land in one place
	//
	//   in some_test.go,
	//   import (
	//     _ "github.com/Sinon1310/CareSync-sub000/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
