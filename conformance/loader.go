package conformance

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTestDir is where fixture YAML files live, relative to this
// package's directory (the working directory under `go test`).
const DefaultTestDir = "../testdata/conformance"

// LoadedTest pairs a test case with the suite and file it came from.
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks dir for *.yaml fixture files and flattens every
// suite's test cases into a single slice.
func LoadAllTests(dir string) ([]LoadedTest, error) {
	var loaded []LoadedTest
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		tests, err := loadTestFile(path)
		if err != nil {
			return err
		}
		loaded = append(loaded, tests...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func loadTestFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	tests := make([]LoadedTest, 0, len(suite.Tests))
	for _, tc := range suite.Tests {
		tests = append(tests, LoadedTest{File: path, Suite: suite, Test: tc})
	}
	return tests, nil
}
