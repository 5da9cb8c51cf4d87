package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class and attribute names shared by widget DOM and the event router.
const (
	ClassRenderBlock = "cm-markdoc-renderBlock"
	ClassImage       = "cm-markdoc-image"
	ClassImageError  = "cm-markdoc-image-error"
	ClassImageSyntax = "cm-markdoc-image-syntax"

	AttrNodeFrom    = "data-node-from"
	AttrImageSource = "data-image-source"
)

// Widget is an opaque render descriptor attached to a decoration.
//
// Two widgets are equal when their inputs are equal; hosts use Eq to skip
// rebuilding DOM that would come out identical.
type Widget interface {
	Eq(other Widget) bool
	// Source is the literal document text the widget stands for.
	Source() string
	// DOM builds a fresh, parentless DOM subtree.
	DOM() *html.Node
}

// Renderer turns markup source into an HTML fragment.
type Renderer interface {
	Render(source string) (string, error)
}

// RenderWidget displays the rendered HTML of a block's source text.
type RenderWidget struct {
	source string
	html   string
}

// NewRenderWidget renders source through r. A render failure never escapes:
// the widget falls back to showing the escaped source.
func NewRenderWidget(source string, r Renderer, log *zap.Logger) *RenderWidget {
	w := &RenderWidget{source: source}
	if r == nil {
		w.html = fallbackHTML(source)
		return w
	}
	out, err := r.Render(source)
	if err != nil {
		log.Debug("render widget fell back to source", zap.Error(err))
		out = fallbackHTML(source)
	}
	w.html = out
	return w
}

func fallbackHTML(source string) string {
	return "<pre>" + html.EscapeString(source) + "</pre>"
}

func (w *RenderWidget) Source() string { return w.source }

// HTML returns the rendered fragment.
func (w *RenderWidget) HTML() string { return w.html }

func (w *RenderWidget) Eq(other Widget) bool {
	o, ok := other.(*RenderWidget)
	return ok && o != nil && o.source == w.source
}

func (w *RenderWidget) DOM() *html.Node {
	container := element(atom.Div,
		html.Attribute{Key: "class", Val: ClassRenderBlock},
		html.Attribute{Key: "contenteditable", Val: "false"},
	)
	ctx := element(atom.Div)
	nodes, err := html.ParseFragment(strings.NewReader(w.html), ctx)
	if err != nil {
		container.AppendChild(&html.Node{Type: html.TextNode, Data: w.source})
		return container
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container
}

var embedTarget = regexp.MustCompile(`!\[\[([^\]]+)\]\]`)

// ImageLoader decides whether an embed target can be displayed.
type ImageLoader interface {
	Load(path string) error
}

// ImageWidget displays the image an embed reference points to.
type ImageWidget struct {
	source     string
	anchor     int
	showSyntax bool
	path       string
	loader     ImageLoader
}

// NewImageWidget builds the widget for an embed node whose literal text is
// source and whose start offset is anchor. A nil loader skips load checks.
func NewImageWidget(source string, anchor int, showSyntax bool, loader ImageLoader) *ImageWidget {
	w := &ImageWidget{source: source, anchor: anchor, showSyntax: showSyntax, loader: loader}
	if m := embedTarget.FindStringSubmatch(source); m != nil {
		w.path = m[1]
	}
	return w
}

func (w *ImageWidget) Source() string { return w.source }

// Anchor is the start offset of the embed node.
func (w *ImageWidget) Anchor() int { return w.anchor }

// Path is the embed target, empty when source holds no embed reference.
func (w *ImageWidget) Path() string { return w.path }

func (w *ImageWidget) ShowSyntax() bool { return w.showSyntax }

func (w *ImageWidget) Eq(other Widget) bool {
	o, ok := other.(*ImageWidget)
	return ok && o != nil &&
		o.source == w.source &&
		o.anchor == w.anchor &&
		o.showSyntax == w.showSyntax
}

// Load reports the loader's verdict for the widget's path.
func (w *ImageWidget) Load() error {
	if w.path == "" {
		return fmt.Errorf("no embed target in %q", w.source)
	}
	if w.loader == nil {
		return nil
	}
	return w.loader.Load(w.path)
}

func (w *ImageWidget) DOM() *html.Node {
	container := element(atom.Div,
		html.Attribute{Key: "class", Val: ClassImage},
		html.Attribute{Key: AttrImageSource, Val: w.source},
		html.Attribute{Key: AttrNodeFrom, Val: strconv.Itoa(w.anchor)},
		html.Attribute{Key: "style", Val: "cursor: text"},
	)
	if w.path == "" {
		return container
	}

	style := "max-width: 100%; height: auto; cursor: text"
	err := w.Load()
	if err != nil {
		style += "; display: none"
	}
	container.AppendChild(element(atom.Img,
		html.Attribute{Key: "src", Val: w.path},
		html.Attribute{Key: "alt", Val: w.path},
		html.Attribute{Key: "style", Val: style},
	))
	if err != nil {
		msg := element(atom.Div, html.Attribute{Key: "class", Val: ClassImageError})
		msg.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprintf("%q could not be found.", w.path)})
		container.AppendChild(msg)
	}
	return container
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

var errNotImage = errors.New("not an image")

// FileImageLoader resolves embed targets against a directory and accepts
// files whose content sniffs as an image. Remote targets are not checked.
type FileImageLoader struct {
	Root string
}

func (l FileImageLoader) Load(path string) error {
	if strings.Contains(path, "://") {
		return nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.Root, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	head := make([]byte, 261)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read image: %w", err)
	}
	if !filetype.IsImage(head[:n]) {
		return fmt.Errorf("%s: %w", path, errNotImage)
	}
	return nil
}
