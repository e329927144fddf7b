package reorder

// Placeholder records a dragged item's start slot and the slot it would
// land in if released now.
type Placeholder struct {
	StartIndex  int
	TargetIndex int
}

// Preview holds the placeholder of one container. The zero value has no
// placeholder.
type Preview struct {
	current *Placeholder
}

// Update moves the placeholder for the item dragged from dragged to target.
// A target equal to dragged clears it. It reports whether the preview
// changed.
func (p *Preview) Update(dragged, target int) bool {
	if target == dragged {
		return p.Clear()
	}
	if p.current != nil && p.current.StartIndex == dragged && p.current.TargetIndex == target {
		return false
	}
	p.current = &Placeholder{StartIndex: dragged, TargetIndex: target}
	return true
}

// Clear drops the placeholder and reports whether one existed.
func (p *Preview) Clear() bool {
	had := p.current != nil
	p.current = nil
	return had
}

// Current returns the active placeholder, if any.
func (p *Preview) Current() (Placeholder, bool) {
	if p.current == nil {
		return Placeholder{}, false
	}
	return *p.current, true
}

// Order returns the displayed order of n items: Order(n)[slot] is the
// original index shown at slot.
func (p *Preview) Order(n int) []int {
	ids := Identity(n)
	if p.current == nil {
		return ids
	}
	return Swap(ids, p.current.StartIndex, p.current.TargetIndex)
}

// Slots inverts Order: Slots(n)[original] is the slot the item is shown in.
func (p *Preview) Slots(n int) []int {
	order := p.Order(n)
	slots := make([]int, n)
	for slot, original := range order {
		slots[original] = slot
	}
	return slots
}

// Slot returns the displayed slot of the item at original among n items.
func (p *Preview) Slot(original, n int) int {
	if original < 0 || original >= n {
		return original
	}
	return p.Slots(n)[original]
}
