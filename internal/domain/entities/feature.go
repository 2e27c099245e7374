package entities

// Category groups features in listings.
type Category string

const (
	CategoryPackaging     Category = "Packaging"
	CategoryClient        Category = "Client"
	CategoryServer        Category = "Server"
	CategoryManagement    Category = "Management"
	CategoryConfiguration Category = "Configuration"
	CategoryCLI           Category = "CLI"
	CategoryServerless    Category = "Serverless"
	CategoryMessaging     Category = "Messaging"
	CategoryAPI           Category = "API"
)

// Feature is an optional capability a generated project may include. It is
// plain data plus three hooks; a nil hook takes the permissive default.
type Feature struct {
	Name                    string
	Title                   string
	Description             string
	Category                Category
	ThirdPartyDocumentation string
	MicronautDocumentation  string
	// Visible features are listed and may be requested by name.
	Visible bool

	SupportsFunc  func(ApplicationType) bool
	IsDefaultFunc func(ApplicationType, Options) bool
	ApplyFunc     func(*GeneratorContext)
}

// Supports reports whether the feature applies to the application type.
func (f *Feature) Supports(applicationType ApplicationType) bool {
	if f.SupportsFunc == nil {
		return true
	}
	return f.SupportsFunc(applicationType)
}

// IsDefault reports whether the feature is selected without being asked for.
func (f *Feature) IsDefault(applicationType ApplicationType, options Options) bool {
	if f.IsDefaultFunc == nil {
		return false
	}
	return f.IsDefaultFunc(applicationType, options)
}

// Apply contributes the feature to the generator context.
func (f *Feature) Apply(ctx *GeneratorContext) {
	if f.ApplyFunc != nil {
		f.ApplyFunc(ctx)
	}
}

// FeatureSet is an insertion ordered set of features keyed by name.
type FeatureSet struct {
	features []*Feature
	index    map[string]int
}

// NewFeatureSet creates a set holding the given features, dropping duplicates.
func NewFeatureSet(features ...*Feature) *FeatureSet {
	set := &FeatureSet{index: make(map[string]int, len(features))}
	for _, f := range features {
		set.Add(f)
	}
	return set
}

// Add inserts the feature and reports whether it was not already present.
func (s *FeatureSet) Add(f *Feature) bool {
	if f == nil {
		return false
	}
	if _, ok := s.index[f.Name]; ok {
		return false
	}
	s.index[f.Name] = len(s.features)
	s.features = append(s.features, f)
	return true
}

// Contains reports whether a feature with the given name is in the set.
func (s *FeatureSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// All returns the features in insertion order.
func (s *FeatureSet) All() []*Feature {
	if s == nil {
		return nil
	}
	result := make([]*Feature, len(s.features))
	copy(result, s.features)
	return result
}

// Names returns the feature names in insertion order.
func (s *FeatureSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.features))
	for _, f := range s.features {
		names = append(names, f.Name)
	}
	return names
}

// Len returns the number of features in the set.
func (s *FeatureSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.features)
}
