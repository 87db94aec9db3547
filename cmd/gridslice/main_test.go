package main

import (
	"bytes"
	"strings"
	"testing"

	grid "github.com/qri-io/grid-go"
)

// saveFixture writes a 3x4 float array holding 0..11 row by row.
func saveFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	store, err := grid.NewLocalStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	g, err := grid.FromSlice(data, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := grid.Save(store, "fixture", g, []int{2, 2}, &grid.CompressionMeta{ID: "gzip"}); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRunScalar(t *testing.T) {
	dir := saveFixture(t)
	cases := []struct {
		order, expr, want string
	}{
		{"array", "1, 2", "6\n"},
		{"array", "-1,-1", "11\n"},
		{"image", "2, 1", "6\n"},
		{"image", "[3,0]", "3\n"},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		if err := run(buf, dir, "fixture", c.order, "", c.expr); err != nil {
			t.Fatalf("%s %q: %v", c.order, c.expr, err)
		}
		if buf.String() != c.want {
			t.Errorf("%s %q: expected %q, got %q", c.order, c.expr, c.want, buf.String())
		}
	}
}

func TestRunRegion(t *testing.T) {
	dir := saveFixture(t)
	buf := &bytes.Buffer{}
	if err := run(buf, dir, "fixture", "array", "sub", "::2, 1:"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "shape [2 3] <f8\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.HasSuffix(out, "saved sub\n") {
		t.Errorf("expected save confirmation, got:\n%s", out)
	}

	buf.Reset()
	if err := run(buf, dir, "sub", "array", "", "1, 0"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "9\n" {
		t.Errorf("expected 9 from the saved region, got %q", buf.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := saveFixture(t)
	cases := []struct {
		array, order, expr string
	}{
		{"fixture", "sideways", "0"},
		{"fixture", "array", "0, x"},
		{"fixture", "array", "0, 0, 0"},
		{"fixture", "array", "3"},
		{"nope", "array", "0"},
	}
	for _, c := range cases {
		if err := run(&bytes.Buffer{}, dir, c.array, c.order, "", c.expr); err == nil {
			t.Errorf("%s %s %q: expected error", c.array, c.order, c.expr)
		}
	}
}

func TestIndexer(t *testing.T) {
	ix, err := indexer("image")
	if err != nil {
		t.Fatal(err)
	}
	if ix.Order != grid.ImageOrder {
		t.Errorf("expected image order, got %s", ix.Order)
	}
	ix, err = indexer("array")
	if err != nil {
		t.Fatal(err)
	}
	if ix.Order != grid.ArrayOrder {
		t.Errorf("expected array order, got %s", ix.Order)
	}
}
