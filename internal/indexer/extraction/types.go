package extraction

// Kind identifies the variant of an Element.
type Kind string

const (
	KindFileComment Kind = "file_comment"
	KindClass       Kind = "class"
	KindFunction    Kind = "function"
	KindFileImports Kind = "file_imports"
	KindMarkupFile  Kind = "html"
)

// Element is one structural fact extracted from a file.
// The set of implementations is closed: only the types in this package satisfy it.
type Element interface {
	Kind() Kind
	ElementName() string
	isElement()
}

// FileComment is the doc block at the top of a file.
type FileComment struct {
	Name        string
	Description string
}

// Class is a class, struct or other type declaration with its members.
type Class struct {
	Name        string
	Keyword     string // "class", "struct", "enum", "protocol", "actor"
	Description string
	Fields      []string // declaration order, duplicates kept
	Methods     []Method // declaration order, duplicates kept
}

// Method is a function declared inside a class body.
type Method struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Function is a function declared outside any class body.
type Function struct {
	Name        string
	Description string
}

// FileImports lists a file's references to other project files.
// Imports are de-duplicated and sorted.
type FileImports struct {
	Name    string
	Imports []string
}

// MarkupFile is the single record emitted for markup (HTML) files.
type MarkupFile struct {
	Name        string
	Description string
	Imports     []string
}

func (FileComment) Kind() Kind { return KindFileComment }
func (Class) Kind() Kind       { return KindClass }
func (Function) Kind() Kind    { return KindFunction }
func (FileImports) Kind() Kind { return KindFileImports }
func (MarkupFile) Kind() Kind  { return KindMarkupFile }

func (e FileComment) ElementName() string { return e.Name }
func (e Class) ElementName() string       { return e.Name }
func (e Function) ElementName() string    { return e.Name }
func (e FileImports) ElementName() string { return e.Name }
func (e MarkupFile) ElementName() string  { return e.Name }

func (FileComment) isElement() {}
func (Class) isElement()       {}
func (Function) isElement()    {}
func (FileImports) isElement() {}
func (MarkupFile) isElement()  {}

// ParseResult is the ordered element list of one file: the optional
// FileComment first, declarations in source order, FileImports last.
type ParseResult []Element
