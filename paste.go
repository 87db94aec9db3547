package grid

// Write pastes src into the region of dst selected by idx. src must have
// exactly the region's shape after integer axes are dropped: same rank and
// same extent on every axis. Nothing is written when validation fails.
func (ix *Indexer) Write(dst, src *Grid, idx ...Index) error {
	p, err := ix.Plan(dst.shape, idx...)
	if err != nil {
		return err
	}
	if err := checkPasteShape(p, src); err != nil {
		return err
	}
	if src == dst {
		src = src.Clone()
	}
	p.walk(dst.strides, func(s, d int) {
		dst.buf.Move(d, src.buf, s)
	})
	return nil
}

func checkPasteShape(p *Plan, src *Grid) error {
	if len(src.shape) != len(p.Shape) {
		return indexErrorf("cannot paste %d-dimensional grid %v into region %v", len(src.shape), src.shape, p.Shape)
	}
	for i, e := range p.Shape {
		if src.shape[i] != e {
			return indexErrorf("cannot paste grid %v into region %v: axis %d has size %d, want %d", src.shape, p.Shape, i, src.shape[i], e)
		}
	}
	return nil
}

// Fill sets every element of the region selected by idx to v.
func (ix *Indexer) Fill(dst *Grid, v interface{}, idx ...Index) error {
	p, err := ix.Plan(dst.shape, idx...)
	if err != nil {
		return err
	}
	val, err := newBuffer(dst.dtype, 1)
	if err != nil {
		return err
	}
	if err := val.Set(0, v); err != nil {
		return err
	}
	p.walk(dst.strides, func(_, d int) {
		dst.buf.Move(d, val, 0)
	})
	return nil
}

// Set stores v at the single element addressed by idx, which must hold an
// integer for every axis.
func (ix *Indexer) Set(dst *Grid, v interface{}, idx ...Index) error {
	p, err := ix.Plan(dst.shape, idx...)
	if err != nil {
		return err
	}
	if !p.IsScalar() {
		return indexErrorf("%s selects a region of shape %v, not a single element", FormatIndex(idx), p.Shape)
	}
	return dst.SetAt(v, p.Coords()...)
}

// Write uses DefaultIndexer.
func Write(dst, src *Grid, idx ...Index) error {
	return DefaultIndexer.Write(dst, src, idx...)
}

// Fill uses DefaultIndexer.
func Fill(dst *Grid, v interface{}, idx ...Index) error {
	return DefaultIndexer.Fill(dst, v, idx...)
}
