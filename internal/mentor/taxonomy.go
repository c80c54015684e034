package mentor

// Cause defines a known error cause pattern.
type Cause struct {
	Tag         CauseTag
	Label       string
	Description string
	Examples    []string
}

// registry is the package-level cause registry, keyed by tag.
var registry map[CauseTag]*Cause

func init() {
	registry = make(map[CauseTag]*Cause, len(seedCauses))
	for i := range seedCauses {
		c := &seedCauses[i]
		registry[c.Tag] = c
	}
}

// GetCause returns a cause by tag, or nil if not found.
func GetCause(tag CauseTag) *Cause {
	return registry[tag]
}

// AllCauses returns every cause in the taxonomy, in seed order.
func AllCauses() []*Cause {
	result := make([]*Cause, 0, len(seedCauses))
	for i := range seedCauses {
		result = append(result, &seedCauses[i])
	}
	return result
}
