package cache

// Keyer generates cache keys for the three entry classes the pipeline
// stores: full layout results, rendered artifacts derived from a layout,
// and upstream HTTP responses.
type Keyer interface {
	// LayoutKey identifies a generated layout by its config hash and the
	// generation options that affect geometry.
	LayoutKey(configHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered artifact derived from a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string

	// HTTPKey identifies a cached upstream HTTP response.
	HTTPKey(namespace, key string) string
}

// LayoutKeyOpts are the generation options folded into a layout key.
// Anything that changes the output geometry must appear here.
type LayoutKeyOpts struct {
	Optimize bool   `json:"optimize"`
	Strategy string `json:"strategy"`
}

// ArtifactKeyOpts are the rendering options folded into an artifact key.
type ArtifactKeyOpts struct {
	Format string `json:"format"` // svg, dot, json
	Engine string `json:"engine"` // graphviz layout engine, when applicable
}

// DefaultKeyer is the standard key scheme. Keys embed a SHA-256 of the
// options so new option fields never collide with old entries.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a generated layout.
func (k *DefaultKeyer) LayoutKey(configHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", configHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// HTTPKey generates a key for an upstream HTTP response.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
