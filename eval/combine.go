package eval

// evalAnd implements AND semantics: error and NOP children are skipped
// (non-destructive); when the surviving children mix domains, the
// result is computed in the printing domain but its reported MatchCount
// collapses back to the face count, so match_count reflects the face
// side even though PrintingIndices still come from the printing buffer.
func (c *Cache) evalAnd(children []*ComputedResult) *ComputedResult {
	var faceChildren, printChildren []*ComputedResult
	for _, ch := range children {
		if ch.Err != nil {
			continue
		}
		if isNopResult(ch) {
			continue
		}
		if ch.Domain == Printing {
			printChildren = append(printChildren, ch)
		} else {
			faceChildren = append(faceChildren, ch)
		}
	}

	if len(faceChildren) == 0 && len(printChildren) == 0 {
		// Vacuous conjunction: every child erred or was NOP.
		buf := c.pool.acquire(c.faceCount())
		fillOnes(buf)
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
	}

	faceBuf := c.andAll(faceChildren, c.faceCount())

	if len(printChildren) == 0 {
		return &ComputedResult{Buffer: faceBuf, MatchCount: popcount(faceBuf), Domain: Face}
	}

	printBuf := c.andAll(printChildren, c.printingCount())
	if len(faceChildren) > 0 {
		expanded := c.expandFaceToPrinting(faceBuf)
		andBytes(printBuf, expanded)
		c.pool.release(expanded)
		c.pool.release(faceBuf)
		faceCollapsed := c.collapsePrintingToFaceBuf(printBuf)
		mc := popcount(faceCollapsed)
		c.pool.release(faceCollapsed)
		return &ComputedResult{Buffer: printBuf, MatchCount: mc, Domain: Printing}
	}

	// Pure printing-domain AND: no face children to cross-promote.
	return &ComputedResult{Buffer: printBuf, MatchCount: popcount(printBuf), Domain: Printing}
}

// evalOr implements OR semantics: if any surviving child is
// printing-domain, every child is promoted to printing domain before
// OR-ing; otherwise the combination stays in the face domain.
func (c *Cache) evalOr(children []*ComputedResult) *ComputedResult {
	var live []*ComputedResult
	anyPrinting := false
	for _, ch := range children {
		if ch.Err != nil || isNopResult(ch) {
			continue
		}
		live = append(live, ch)
		if ch.Domain == Printing {
			anyPrinting = true
		}
	}

	if len(live) == 0 {
		// Vacuous disjunction: every child erred or was NOP.
		buf := c.pool.acquire(c.faceCount())
		return &ComputedResult{Buffer: buf, MatchCount: 0, Domain: Face}
	}

	if !anyPrinting {
		buf := c.pool.acquire(c.faceCount())
		for _, ch := range live {
			orBytes(buf, ch.Buffer)
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
	}

	buf := c.pool.acquire(c.printingCount())
	for _, ch := range live {
		if ch.Domain == Printing {
			orBytes(buf, ch.Buffer)
			continue
		}
		expanded := c.expandFaceToPrinting(ch.Buffer)
		orBytes(buf, expanded)
		c.pool.release(expanded)
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

// evalNot implements NOT semantics: an error propagates unchanged; a
// printing-domain child collapses to face before inverting,
// since negating a printing set is meaningless for the card-result
// surface.
func (c *Cache) evalNot(child *ComputedResult) *ComputedResult {
	if child.Err != nil {
		buf := c.pool.acquire(c.faceCount())
		return &ComputedResult{Buffer: buf, MatchCount: -1, Domain: Face, Err: child.Err}
	}

	var faceBuf []byte
	collapsed := false
	if child.Domain == Printing {
		faceBuf = c.collapsePrintingToFaceBuf(child.Buffer)
		collapsed = true
	} else {
		faceBuf = child.Buffer
	}

	out := c.pool.acquire(c.faceCount())
	notBytes(out, faceBuf)
	if collapsed {
		c.pool.release(faceBuf)
	}
	return &ComputedResult{Buffer: out, MatchCount: popcount(out), Domain: Face}
}

func isNopResult(r *ComputedResult) bool {
	return r.IsNop
}

// andAll bytewise-ANDs every buffer in results, starting from all-ones so
// an empty list yields the conjunction identity. The buffer becomes part
// of the caller's ComputedResult (or is released by the caller if it was
// only an intermediate).
func (c *Cache) andAll(results []*ComputedResult, size int) []byte {
	buf := c.pool.acquire(size)
	fillOnes(buf)
	for _, r := range results {
		andBytes(buf, r.Buffer)
	}
	return buf
}

// expandFaceToPrinting promotes a face-domain buffer to the printing
// domain: a face match sets every printing row belonging to that face.
// The returned buffer is a short-lived pool loan; the caller releases
// it once merged.
func (c *Cache) expandFaceToPrinting(faceBuf []byte) []byte {
	out := c.pool.acquire(c.printingCount())
	ref := c.Printings.Data.CanonicalFaceRef
	for j := range out {
		if faceBuf[ref[j]] != 0 {
			out[j] = 1
		}
	}
	return out
}

// collapsePrintingToFaceBuf promotes a printing-domain buffer down to a
// face-domain buffer: a printing match sets its canonical face. The
// returned buffer is a short-lived pool loan; the caller releases it
// once merged or measured.
func (c *Cache) collapsePrintingToFaceBuf(printBuf []byte) []byte {
	out := c.pool.acquire(c.faceCount())
	ref := c.Printings.Data.CanonicalFaceRef
	for j, b := range printBuf {
		if b != 0 {
			out[ref[j]] = 1
		}
	}
	return out
}
