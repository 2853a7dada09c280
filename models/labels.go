package models

// LabelMaps holds display names for opaque Bookla identifiers, one map per
// category. Empty maps are a valid state: enrichment simply yields nulls.
type LabelMaps struct {
	Resources map[string]string
	Services  map[string]string
}

func NewLabelMaps() LabelMaps {
	return LabelMaps{
		Resources: make(map[string]string),
		Services:  make(map[string]string),
	}
}
