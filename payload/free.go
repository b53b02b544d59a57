package payload

// Free walks the Payload tree iteratively — using an explicit, heap-
// allocated work stack rather than host-language recursion, per the
// specification's requirement that tree destruction not grow the call
// stack on deeply nested input — and clears every str/bin/ext buffer and
// every arr/map child reference so the subtree becomes immediately
// reclaimable by the garbage collector.
//
// Go has no manual allocator, so Free's role is not to prevent a memory
// leak (the GC would reclaim an unreferenced tree regardless) but to honor
// the specification's contract: a single call releases an entire tree in
// one guaranteed pass, safe on arrays containing unfilled (nil-arm) slots,
// and idempotent — calling Free twice on the same root does nothing the
// second time, since every node it touches is left in the nil arm.
func (p *Payload) Free() {
	if p == nil {
		return
	}

	stack := make([]*Payload, 0, 16)
	stack = append(stack, p)

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		switch cur.kind {
		case KindStr, KindBin, KindExt:
			cur.buf = nil
		case KindArr:
			for i := range cur.arr {
				stack = append(stack, &cur.arr[i])
			}
			cur.arr = nil
		case KindMap:
			if cur.m != nil {
				for i := range cur.m.entries {
					stack = append(stack, &cur.m.entries[i].value)
				}
				cur.m.entries = nil
				cur.m.index = nil
				cur.m = nil
			}
		}

		cur.kind = KindNil
		cur.i, cur.u, cur.f, cur.b = 0, 0, 0, false
		cur.tsSec, cur.tsNsec = 0, 0
		cur.extType = 0
	}
}
