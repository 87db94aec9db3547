// Command gridslice evaluates an index expression against an array saved in
// a local zarr store and prints the result.
//
//	gridslice -store ./data -array images/ct "10, ::2, 1:-1"
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	grid "github.com/qri-io/grid-go"
)

func main() {
	storeDir := flag.String("store", ".", "directory of the zarr store")
	arrayPath := flag.String("array", "", "path of the array within the store")
	order := flag.String("order", "array", "axis order of the expression: array (slowest first) or image (fastest first)")
	out := flag.String("out", "", "save a region result as a new array at this path")
	quiet := flag.Bool("q", false, "don't log missing chunks")
	flag.Parse()

	if *quiet {
		grid.SetLogger(nil)
	}
	if err := run(os.Stdout, *storeDir, *arrayPath, *order, *out, flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, storeDir, arrayPath, order, out, expr string) error {
	ix, err := indexer(order)
	if err != nil {
		return err
	}
	idx, err := grid.ParseIndex(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	store, err := grid.NewLocalStore(storeDir)
	if err != nil {
		return err
	}
	a, err := grid.Open(store, arrayPath, grid.ModeRead)
	if err != nil {
		return fmt.Errorf("opening %q: %w", arrayPath, err)
	}
	g, err := a.ReadAll()
	if err != nil {
		return err
	}

	res, err := ix.Read(g, idx...)
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", a.Path(), grid.FormatIndex(idx), err)
	}
	if res.IsScalar() {
		_, err := fmt.Fprintln(w, res.Scalar)
		return err
	}

	fmt.Fprintf(w, "shape %v %s\n", ix.Order.Shape(res.Grid.Shape()), res.Grid.Dtype())
	if res.Grid.Len() > 0 {
		fmt.Fprintf(w, "%v\n", res.Grid.Array())
	}
	if out != "" {
		if _, err := grid.Save(store, out, res.Grid, nil, a.Meta().Compressor); err != nil {
			return fmt.Errorf("saving %q: %w", out, err)
		}
		fmt.Fprintf(w, "saved %s\n", out)
	}
	return nil
}

func indexer(order string) (*grid.Indexer, error) {
	switch order {
	case "array":
		return &grid.Indexer{Order: grid.ArrayOrder}, nil
	case "image":
		return &grid.Indexer{Order: grid.ImageOrder}, nil
	default:
		return nil, fmt.Errorf("unknown axis order %q", order)
	}
}
