package game

// Rules answers legality, mobility and evaluation queries. It owns the
// orientation cache it reads from, so tests can build isolated instances.
type Rules struct {
	orientations *OrientationCache
}

// NewStandardRules returns rules backed by a fresh orientation cache.
func NewStandardRules() *Rules {
	return &Rules{orientations: NewOrientationCache()}
}

// NewRulesWithCache returns rules reading from an existing cache.
func NewRulesWithCache(oc *OrientationCache) *Rules {
	if oc == nil {
		oc = NewOrientationCache()
	}
	return &Rules{orientations: oc}
}

// Standard is shared by callers that do not need an isolated cache.
var Standard = NewRulesWithCache(defaultOrientations)

func (r *Rules) Orientations() *OrientationCache {
	return r.orientations
}
