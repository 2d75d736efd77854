package kernel

const (
	DefaultPageTake = 20
	MaxPageTake     = 100
)

// Page is a clamped take/skip window over a newest-first listing.
type Page struct {
	take int
	skip int
}

// NewPage clamps take into [1, MaxPageTake] (DefaultPageTake when absent) and
// skip to >= 0 (0 when absent). Out-of-range values are clamped, not rejected.
func NewPage(take, skip *int) Page {
	return NewBoundedPage(take, skip, DefaultPageTake, MaxPageTake)
}

// NewBoundedPage is NewPage for listings with their own default and ceiling.
func NewBoundedPage(take, skip *int, defaultTake, maxTake int) Page {
	t := defaultTake
	if take != nil {
		t = min(max(*take, 1), maxTake)
	}
	s := 0
	if skip != nil {
		s = max(*skip, 0)
	}
	return Page{take: t, skip: s}
}

func (p Page) Take() int {
	return p.take
}

func (p Page) Skip() int {
	return p.skip
}
