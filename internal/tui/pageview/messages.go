package pageview

// Area is the section of the page that receives key presses.
type Area int

const (
	AreaTheme Area = iota
	AreaCounter
	AreaFAQ
	AreaForm

	areaCount = iota
)

func (a Area) String() string {
	switch a {
	case AreaTheme:
		return "theme"
	case AreaCounter:
		return "counter"
	case AreaFAQ:
		return "faq"
	case AreaForm:
		return "form"
	default:
		return "unknown"
	}
}

// deferredMsg fires when a scheduled page action falls due.
type deferredMsg struct {
	id uint64
}

// ClearErrorMsg dismisses the error banner it was scheduled for. A newer
// banner is left alone.
type ClearErrorMsg struct {
	seq int
}
