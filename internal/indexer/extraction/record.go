package extraction

// Record is the flat, serializable form of an Element.
type Record struct {
	Kind        Kind     `json:"kind" yaml:"kind"`
	Name        string   `json:"name" yaml:"name"`
	Keyword     string   `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods     []Method `json:"methods,omitempty" yaml:"methods,omitempty"`
	Imports     []string `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// Encode flattens an element into a Record.
func Encode(el Element) Record {
	rec := Record{Kind: el.Kind(), Name: el.ElementName()}

	switch e := el.(type) {
	case FileComment:
		rec.Description = e.Description
	case Class:
		rec.Keyword = e.Keyword
		rec.Description = e.Description
		rec.Fields = e.Fields
		rec.Methods = e.Methods
	case Function:
		rec.Description = e.Description
	case FileImports:
		rec.Imports = e.Imports
	case MarkupFile:
		rec.Description = e.Description
		rec.Imports = e.Imports
	}

	return rec
}

// EncodeAll flattens a parse result, preserving order.
func EncodeAll(elements []Element) []Record {
	records := make([]Record, 0, len(elements))
	for _, el := range elements {
		records = append(records, Encode(el))
	}
	return records
}
