package queries

const (
	DefaultPageSize = 10
	MaxPageSize     = 200
)

// Page is an offset window over a listing: From rows are skipped and at
// most Size rows are returned.
type Page struct {
	From int
	Size int
}

func DefaultPage() Page {
	return Page{From: 0, Size: DefaultPageSize}
}

// Normalize clamps the window to usable bounds; a negative From becomes
// zero and a non-positive Size falls back to the default.
func (p Page) Normalize() Page {
	if p.From < 0 {
		p.From = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Cut returns the window's slice bounds over n rows. A window starting
// past the end yields an empty range.
func (p Page) Cut(n int) (int, int) {
	p = p.Normalize()
	lo := min(p.From, n)
	hi := min(lo+p.Size, n)
	return lo, hi
}

func (p Page) Limit() int  { return p.Normalize().Size }
func (p Page) Offset() int { return p.Normalize().From }
