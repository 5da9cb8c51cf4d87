package markup

// TransformFunc turns a node into renderable output.
type TransformFunc func(n *Node, cfg Config) Renderable

// NodeSchema controls how a node type renders.
//
// Transform wins over Render. A schema with neither falls back to the
// built-in rendering of the node type.
type NodeSchema struct {
	Render    string
	Transform TransformFunc
}

// TagSchema controls how a custom `{% name %}` tag renders. Unknown tags
// render their children only.
type TagSchema struct {
	Render    string
	Transform TransformFunc
}

// Config maps node types and tag names to schemas.
type Config struct {
	Nodes map[string]NodeSchema
	Tags  map[string]TagSchema
}

// DefaultConfig returns the built-in base configuration. Each call returns
// fresh maps.
func DefaultConfig() Config {
	return Config{
		Nodes: map[string]NodeSchema{
			"blockquote": {Render: "blockquote", Transform: containerTransform("blockquote")},
			"paragraph":  {Render: "p", Transform: containerTransform("p")},
			"softbreak":  {Render: "br", Transform: voidTransform("br")},
			"hardbreak":  {Render: "br", Transform: voidTransform("br")},
		},
		Tags: map[string]TagSchema{},
	}
}

// Merge returns a new Config holding base entries shallow-overridden by
// override entries of the same key. Neither argument is modified.
func Merge(base, override Config) Config {
	out := Config{
		Nodes: make(map[string]NodeSchema, len(base.Nodes)+len(override.Nodes)),
		Tags:  make(map[string]TagSchema, len(base.Tags)+len(override.Tags)),
	}
	for k, v := range base.Nodes {
		out.Nodes[k] = v
	}
	for k, v := range override.Nodes {
		out.Nodes[k] = v
	}
	for k, v := range base.Tags {
		out.Tags[k] = v
	}
	for k, v := range override.Tags {
		out.Tags[k] = v
	}
	return out
}

func containerTransform(name string) TransformFunc {
	return func(n *Node, cfg Config) Renderable {
		return &Element{Name: name, Children: n.TransformChildren(cfg)}
	}
}

func voidTransform(name string) TransformFunc {
	return func(*Node, Config) Renderable {
		return &Element{Name: name}
	}
}

var nodeTypes = map[string]bool{
	"document": true, "paragraph": true, "inline": true, "heading": true,
	"blockquote": true, "list": true, "item": true, "hr": true,
	"fence": true, "html": true, "text": true, "softbreak": true,
	"hardbreak": true, "code": true, "em": true, "strong": true,
	"link": true, "image": true, "table": true, "thead": true,
	"tbody": true, "tr": true, "th": true, "td": true,
}

// KnownNodeType reports whether name is a node type the parser produces.
func KnownNodeType(name string) bool { return nodeTypes[name] }
