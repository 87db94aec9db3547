package grid

// chunkDimProjection maps one dimension of a chunk onto the array.
type chunkDimProjection struct {
	// Index of chunk.
	DimChunkIX int
	// Selection of items from chunk array.
	DimChunkSel Index
	// Selection of items in target (output) array.
	DimOutSel Index
}

// A mapping of items from chunk to output array. Can be used to extract items
// from the chunk array for loading into an output array. Can also be used to
// extract items from a value array for setting/updating in a chunk array.
//
// All fields list dimensions slowest first and are meant for an ArrayOrder
// Indexer.
type chunkProjection struct {
	// Indices of chunk
	ChunkCoords []int
	// Selection of items from chunk array.
	ChunkSelection []Index
	// Selection of items in target (output) array.
	OutSelection []Index
}

// dimProjections splits one dimension of the given extent into chunks. The
// last chunk is cropped to the extent.
func dimProjections(extent, chunk int) []chunkDimProjection {
	var out []chunkDimProjection
	for ix, start := 0, 0; start < extent; ix, start = ix+1, start+chunk {
		stop := start + chunk
		if stop > extent {
			stop = extent
		}
		out = append(out, chunkDimProjection{
			DimChunkIX:  ix,
			DimChunkSel: Slice().Start(0).Stop(stop - start),
			DimOutSel:   Slice().Start(start).Stop(stop),
		})
	}
	return out
}

// chunkProjections lists every chunk of an array of the given shape, last
// dimension varying fastest. An array with an empty dimension has no chunks.
func chunkProjections(shape, chunks []int) []chunkProjection {
	dims := make([][]chunkDimProjection, len(shape))
	for d := range shape {
		dims[d] = dimProjections(shape[d], chunks[d])
		if len(dims[d]) == 0 {
			return nil
		}
	}

	var out []chunkProjection
	pos := make([]int, len(dims))
	for {
		p := chunkProjection{
			ChunkCoords:    make([]int, len(dims)),
			ChunkSelection: make([]Index, len(dims)),
			OutSelection:   make([]Index, len(dims)),
		}
		for d, i := range pos {
			dp := dims[d][i]
			p.ChunkCoords[d] = dp.DimChunkIX
			p.ChunkSelection[d] = dp.DimChunkSel
			p.OutSelection[d] = dp.DimOutSel
		}
		out = append(out, p)

		d := len(dims) - 1
		for ; d >= 0; d-- {
			pos[d]++
			if pos[d] < len(dims[d]) {
				break
			}
			pos[d] = 0
		}
		if d < 0 {
			return out
		}
	}
}
