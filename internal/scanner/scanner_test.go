package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestScanDiscoversMarkedDeclarations(t *testing.T) {
	src := `package widgets

//docmark:doc
type Widget struct{}

//docmark:doc
func (w *Widget) Render() error { return nil }

//docmark:doc filename="guides/helpers.md"
func Helper() {}

func unmarked() {}
`
	path := writeSource(t, t.TempDir(), "widget.go", src)
	marks := Scan(path)

	require.Len(t, marks, 3)

	assert.Equal(t, Mark{Name: "Widget", Line: 4, Kind: KindType}, marks[0])
	assert.Equal(t, Mark{Name: "Widget.Render", Line: 7, Kind: KindMethod}, marks[1])
	assert.Equal(t, Mark{Name: "Helper", Filename: "guides/helpers.md", Line: 10, Kind: KindFunction}, marks[2])
}

func TestScanDirectiveArguments(t *testing.T) {
	tests := []struct {
		name         string
		directive    string
		wantFilename string
	}{
		{"bare", "//docmark:doc", ""},
		{"double quoted", `//docmark:doc filename="a/b.md"`, "a/b.md"},
		{"single quoted", `//docmark:doc filename='a/b.md'`, "a/b.md"},
		{"unknown key ignored", `//docmark:doc owner="core"`, ""},
		{"unknown key before filename", `//docmark:doc owner="core" filename="x.md"`, "x.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "package p\n\n" + tt.directive + "\nfunc F() {}\n"
			path := writeSource(t, t.TempDir(), "source.go", src)

			marks := Scan(path)
			require.Len(t, marks, 1)
			assert.Equal(t, tt.wantFilename, marks[0].Filename)
		})
	}
}

func TestScanSimilarDirectiveIgnored(t *testing.T) {
	src := `package p

//docmark:docs
func F() {}

// docmark:doc is discussed in prose here, not attached to a declaration.
var x = 1

//docmark:doc
func G() {}
`
	path := writeSource(t, t.TempDir(), "source.go", src)
	marks := Scan(path)

	require.Len(t, marks, 1)
	assert.Equal(t, "G", marks[0].Name)
}

func TestScanNestedTypeInsideFunction(t *testing.T) {
	src := `package p

func Build() {
	//docmark:doc
	type helper struct{}
	_ = helper{}
}
`
	path := writeSource(t, t.TempDir(), "source.go", src)
	marks := Scan(path)

	require.Len(t, marks, 1)
	assert.Equal(t, "helper", marks[0].Name)
	assert.Equal(t, KindType, marks[0].Kind)
}

func TestScanTestFileClassification(t *testing.T) {
	src := `package p

//docmark:doc
type Fixture struct{}

//docmark:doc
func Check() {}
`

	t.Run("tests directory outranks declaration kind", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), filepath.Join("tests", "foo.go"), src)
		marks := Scan(path)
		require.Len(t, marks, 2)
		assert.Equal(t, KindTest, marks[0].Kind)
		assert.Equal(t, KindTest, marks[1].Kind)
	})

	t.Run("test suffix in file name", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), "foo_test.go", src)
		marks := Scan(path)
		require.Len(t, marks, 2)
		assert.Equal(t, KindTest, marks[0].Kind)
	})

	t.Run("testdata directory", func(t *testing.T) {
		path := writeSource(t, t.TempDir(), filepath.Join("testdata", "foo.go"), src)
		marks := Scan(path)
		require.Len(t, marks, 2)
		assert.Equal(t, KindTest, marks[0].Kind)
	})
}

func TestScanPackageInitFile(t *testing.T) {
	src := `package p

//docmark:doc
type Config struct{}
`
	path := writeSource(t, t.TempDir(), "doc.go", src)
	marks := Scan(path)

	require.Len(t, marks, 1)
	assert.Equal(t, KindPackage, marks[0].Kind)
}

func TestScanGroupedTypeSpecs(t *testing.T) {
	src := `package p

type (
	//docmark:doc
	First struct{}

	Second struct{}
)
`
	path := writeSource(t, t.TempDir(), "source.go", src)
	marks := Scan(path)

	require.Len(t, marks, 1)
	assert.Equal(t, "First", marks[0].Name)
}

func TestScanMalformedFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "broken.go", "package p\nfunc {{{")
	assert.Nil(t, Scan(path))
}

func TestScanMissingFile(t *testing.T) {
	assert.Nil(t, Scan(filepath.Join(t.TempDir(), "absent.go")))
}

func TestIsTestFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"internal/widgets/widget.go", false},
		{"internal/widgets/widget_test.go", true},
		{"tests/widget.go", true},
		{"internal/testdata/fixture.go", true},
		{"internal/contest/vote.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isTestFile(tt.path))
		})
	}
}
