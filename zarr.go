package grid

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrReadOnly = errors.New("array is read only")

// arrayIndexer addresses stored arrays the way zarr users do, slowest
// dimension first.
var arrayIndexer = &Indexer{Order: ArrayOrder}

// Array is a grid persisted in a Store as zarr v2 chunks.
type Array struct {
	path  Path
	store Store
	mode  PersistenceMode
	meta  *ArrayMeta
}

// Create writes array metadata at path. ModeWriteFail refuses to replace an
// existing array, ModeWrite overwrites it.
func Create(store Store, path string, m *ArrayMeta, mode PersistenceMode) (*Array, error) {
	if mode != ModeWrite && mode != ModeWriteFail {
		return nil, fmt.Errorf("cannot create array in mode %q", mode)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	p, err := NewPath(path)
	if err != nil {
		return nil, err
	}

	mp := p.Join(string(MTArray)).String()
	if mode == ModeWriteFail {
		if f, err := store.Get(mp); err == nil {
			f.Close()
			return nil, fmt.Errorf("array already exists at %q", path)
		}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	if err := store.Put(mp, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("writing %q metadata: %w", mp, err)
	}

	return &Array{path: p, store: store, mode: mode, meta: m}, nil
}

// Open reads the array at path. Modes r and r+ require it to exist.
func Open(store Store, path string, mode PersistenceMode) (*Array, error) {
	p, err := NewPath(path)
	if err != nil {
		return nil, err
	}

	a := &Array{
		path:  p,
		store: store,
		mode:  mode,
	}

	mp := p.Join(string(MTArray)).String()
	f, err := store.Get(mp)
	if err != nil {
		if errors.Is(err, ErrNotfound) && mode != ModeRead && mode != ModeReadWrite {
			return a, nil
		}
		return nil, err
	}
	defer f.Close()

	a.meta = &ArrayMeta{}
	if err := json.NewDecoder(f).Decode(a.meta); err != nil {
		return nil, fmt.Errorf("reading %q metadata: %w", mp, err)
	}
	if err := a.meta.Validate(); err != nil {
		return nil, fmt.Errorf("reading %q metadata: %w", mp, err)
	}
	return a, nil
}

// Save stores g as a new array at path. chunks lists the chunk shape slowest
// dimension first, nil stores the whole grid as a single chunk. A nil
// compressor stores chunks uncompressed.
func Save(store Store, path string, g *Grid, chunks []int, compressor *CompressionMeta) (*Array, error) {
	shape := ArrayOrder.Shape(g.shape)
	if chunks == nil {
		chunks = make([]int, len(shape))
		for i, e := range shape {
			chunks[i] = e
			if e == 0 {
				chunks[i] = 1
			}
		}
	}
	a, err := Create(store, path, &ArrayMeta{
		ZarrFormat: ZarrFormat,
		Shape:      shape,
		Chunks:     chunks,
		Dtype:      g.dtype,
		Compressor: compressor,
		Order:      "C",
	}, ModeWrite)
	if err != nil {
		return nil, err
	}
	if err := a.WriteAll(g); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Array) Info() string {
	if a.meta == nil {
		return "<grid-go.Array>"
	}
	return fmt.Sprintf("<grid-go.Array %s %v %s>", a.path, a.meta.Shape, a.meta.Dtype)
}

func (a *Array) Path() string {
	return a.path.String()
}

// Meta returns the array metadata, nil for an array opened before creation.
func (a *Array) Meta() *ArrayMeta { return a.meta }

// ReadAll assembles the whole array into a grid. Chunks missing from the
// store read as the fill value.
func (a *Array) ReadAll() (*Grid, error) {
	if a.meta == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotfound, a.path.Join(string(MTArray)))
	}
	g, err := New(a.meta.Dtype, ArrayOrder.Shape(a.meta.Shape)...)
	if err != nil {
		return nil, err
	}
	if err := a.load(g, allChunks); err != nil {
		return nil, err
	}
	return g, nil
}

// WriteAll replaces the array's contents with g, which must have the array's
// shape.
func (a *Array) WriteAll(g *Grid) error {
	if err := a.writable(); err != nil {
		return err
	}
	if shape := ArrayOrder.Shape(g.shape); !equalInts(shape, a.meta.Shape) {
		return fmt.Errorf("%w: grid shape %v doesn't match array shape %v", ErrIndex, shape, a.meta.Shape)
	}
	return a.save(g, allChunks)
}

// Read indexes the stored array slowest dimension first, like zarr's
// Python API. Only the chunks the expression touches are loaded.
func (a *Array) Read(idx ...Index) (Result, error) {
	if a.meta == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrNotfound, a.path.Join(string(MTArray)))
	}
	g, err := New(a.meta.Dtype, ArrayOrder.Shape(a.meta.Shape)...)
	if err != nil {
		return Result{}, err
	}
	p, err := arrayIndexer.Plan(g.shape, idx...)
	if err != nil {
		return Result{}, err
	}
	if err := a.load(g, a.overlaps(p)); err != nil {
		return Result{}, err
	}
	return arrayIndexer.Read(g, idx...)
}

// Write pastes src into the region selected by idx, slowest dimension first.
// Only the chunks the region touches are read and rewritten.
func (a *Array) Write(src *Grid, idx ...Index) error {
	if err := a.writable(); err != nil {
		return err
	}
	g, err := New(a.meta.Dtype, ArrayOrder.Shape(a.meta.Shape)...)
	if err != nil {
		return err
	}
	p, err := arrayIndexer.Plan(g.shape, idx...)
	if err != nil {
		return err
	}
	if err := checkPasteShape(p, src); err != nil {
		return err
	}
	touched := a.overlaps(p)
	if err := a.load(g, touched); err != nil {
		return err
	}
	if err := arrayIndexer.Write(g, src, idx...); err != nil {
		return err
	}
	return a.save(g, touched)
}

func allChunks(chunkProjection) bool { return true }

// overlaps accepts the chunks holding at least one element selected by p.
func (a *Array) overlaps(p *Plan) func(chunkProjection) bool {
	n := len(a.meta.Shape)
	hit := make([][]bool, n)
	for d := range hit {
		size := a.meta.Chunks[d]
		hit[d] = make([]bool, (a.meta.Shape[d]+size-1)/size)
		ax := p.Axes[n-1-d]
		for k := 0; k < ax.Count; k++ {
			hit[d][ax.Coord(k)/size] = true
		}
	}
	return func(pr chunkProjection) bool {
		for d, c := range pr.ChunkCoords {
			if !hit[d][c] {
				return false
			}
		}
		return true
	}
}

// load copies the chunks accepted by keep into g, which has the array's
// shape.
func (a *Array) load(g *Grid, keep func(chunkProjection) bool) error {
	fill, err := a.meta.fill()
	if err != nil {
		return err
	}
	for _, pr := range chunkProjections(a.meta.Shape, a.meta.Chunks) {
		if !keep(pr) {
			continue
		}
		chunk, err := a.readChunk(pr.ChunkCoords)
		if errors.Is(err, ErrNotfound) {
			Logf("grid: chunk %s missing, using fill value", a.chunkPath(pr.ChunkCoords))
			if err := arrayIndexer.Fill(g, fill, pr.OutSelection...); err != nil {
				return err
			}
			continue
		} else if err != nil {
			return err
		}

		part, err := arrayIndexer.Extract(chunk, pr.ChunkSelection...)
		if err != nil {
			return err
		}
		if err := arrayIndexer.Write(g, part, pr.OutSelection...); err != nil {
			return err
		}
	}
	return nil
}

// save stores the chunks of g accepted by keep. Edge chunks are padded with
// the fill value.
func (a *Array) save(g *Grid, keep func(chunkProjection) bool) error {
	fill, err := a.meta.fill()
	if err != nil {
		return err
	}
	for _, pr := range chunkProjections(a.meta.Shape, a.meta.Chunks) {
		if !keep(pr) {
			continue
		}
		chunk, err := New(a.meta.Dtype, ArrayOrder.Shape(a.meta.Chunks)...)
		if err != nil {
			return err
		}
		if err := arrayIndexer.Fill(chunk, fill); err != nil {
			return err
		}
		part, err := arrayIndexer.Extract(g, pr.OutSelection...)
		if err != nil {
			return err
		}
		if err := arrayIndexer.Write(chunk, part, pr.ChunkSelection...); err != nil {
			return err
		}
		if err := a.writeChunk(pr.ChunkCoords, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (a *Array) writable() error {
	if a.mode == ModeRead {
		return fmt.Errorf("%w: %s", ErrReadOnly, a.path)
	}
	if a.meta == nil {
		return fmt.Errorf("%w: %s", ErrNotfound, a.path.Join(string(MTArray)))
	}
	return nil
}

func (a *Array) readChunk(coords []int) (*Grid, error) {
	key := a.chunkPath(coords).String()
	f, err := a.store.Get(key)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := a.meta.Compressor.Decompressor(f)
	if err != nil {
		return nil, fmt.Errorf("chunk %s: %w", key, err)
	}
	defer r.Close()

	chunk, err := New(a.meta.Dtype, ArrayOrder.Shape(a.meta.Chunks)...)
	if err != nil {
		return nil, err
	}
	if err := binary.Read(r, a.meta.Dtype.Binary(), chunk.Data()); err != nil {
		return nil, fmt.Errorf("chunk %s: %w", key, err)
	}
	return chunk, nil
}

func (a *Array) writeChunk(coords []int, chunk *Grid) error {
	key := a.chunkPath(coords).String()
	buf := &bytes.Buffer{}
	w, err := a.meta.Compressor.Compressor(buf)
	if err != nil {
		return fmt.Errorf("chunk %s: %w", key, err)
	}
	if err := binary.Write(w, a.meta.Dtype.Binary(), chunk.Data()); err != nil {
		w.Close()
		return fmt.Errorf("chunk %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("chunk %s: %w", key, err)
	}
	return a.store.Put(key, buf)
}

func (a *Array) chunkPath(coords []int) Path {
	if len(coords) == 0 {
		return a.path.Join("0")
	}
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = strconv.Itoa(c)
	}
	return a.path.Join(strings.Split(strings.Join(parts, a.meta.separator()), "/")...)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type PersistenceMode string

const (
	// Persistence mode:
	// ‘r’ means read only (must exist);
	ModeRead PersistenceMode = "r"
	//‘r+’ means read/write (must exist)
	ModeReadWrite PersistenceMode = "r+"
	// ‘a’ means read/write (create if doesn’t exist)
	ModeReadWriteCreate PersistenceMode = "a"
	// ‘w’ means create (overwrite if exists)
	ModeWrite PersistenceMode = "w"
	// ‘w-’ means create (fail if exists).
	ModeWriteFail PersistenceMode = "w-"
)

type Path []string

// NewPath normalizes a logical path the way the zarr storage specification
// requires: backslashes become forward slashes, leading and trailing slashes
// are stripped and repeated slashes collapse. The empty path is the store
// root.
func NewPath(posix string) (Path, error) {
	posix = strings.ReplaceAll(posix, "\\", "/")
	var p Path
	for _, seg := range strings.Split(posix, "/") {
		switch seg {
		case "":
			continue
		case ".", "..":
			return nil, fmt.Errorf("invalid path segment %q in %q", seg, posix)
		}
		p = append(p, seg)
	}
	return p, nil
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

func (p Path) Join(elems ...string) Path {
	out := make(Path, 0, len(p)+len(elems))
	return append(append(out, p...), elems...)
}
