package emit

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"gc-derive/internal/derive"
)

// FileSuffix is appended to the snake_case type name of every output file.
const FileSuffix = "_gc.rs"

// Config holds configuration for rendering.
type Config struct {
	// Source names the descriptor file in the generated header.
	// Empty omits the line.
	Source string
}

// GeneratedFile represents one rendered output file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "node_gc.rs").
	Filename string
	// Content is the rendered source text.
	Content []byte
}

// Emitter renders capability blocks to source text.
type Emitter struct {
	config Config
}

// NewEmitter creates a new Emitter with the given configuration.
func NewEmitter(config Config) *Emitter {
	return &Emitter{config: config}
}

type fileData struct {
	Source string
	Blocks []string
}

// RenderBlock renders every item of b, separated by blank lines.
func (e *Emitter) RenderBlock(b *derive.Block) (string, error) {
	rendered := make([]string, 0, len(b.Items))

	for _, it := range b.Items {
		text, err := renderItem(it)
		if err != nil {
			return "", fmt.Errorf("rendering %s block for %s: %w", b.Capability, b.TypeName, err)
		}

		rendered = append(rendered, text)
	}

	return strings.Join(rendered, "\n"), nil
}

// Generate renders the blocks of one type into a single file.
// Blocks are written in the order given.
func (e *Emitter) Generate(typeName string, blocks []*derive.Block) (*GeneratedFile, error) {
	data := fileData{Source: e.config.Source}

	for _, b := range blocks {
		text, err := e.RenderBlock(b)
		if err != nil {
			return nil, err
		}

		data.Blocks = append(data.Blocks, text)
	}

	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("executing file template for %s: %w", typeName, err)
	}

	return &GeneratedFile{
		Filename: FileName(typeName),
		Content:  buf.Bytes(),
	}, nil
}

func renderItem(it derive.Item) (string, error) {
	var name string

	switch it.(type) {
	case *derive.Impl:
		name = "impl"
	case *derive.Marker:
		name = "marker"
	default:
		return "", fmt.Errorf("unsupported item %T", it)
	}

	var buf bytes.Buffer

	err := itemTemplates.ExecuteTemplate(&buf, name, it)
	if err != nil {
		return "", fmt.Errorf("executing %s template: %w", name, err)
	}

	return buf.String(), nil
}

// FileName returns the output file name for a type, e.g. HTTPNode -> http_node_gc.rs.
func FileName(typeName string) string {
	return snakeCase(typeName) + FileSuffix
}

func snakeCase(s string) string {
	runes := []rune(s)

	var sb strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte('_')
			}
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}
