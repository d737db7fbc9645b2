package graph

import "github.com/mvp-joe/project-atlas/internal/indexer/parsers"

// Node is one parsed project file.
type Node struct {
	ID       string           `json:"id"`       // Relative slash path
	Folder   string           `json:"folder"`   // Relative folder, "." for the root
	Language parsers.Language `json:"language"` // Language of the file's parser
}

// Edge records that From imports To.
type Edge struct {
	From   string `json:"from"`   // Importing file
	To     string `json:"to"`     // Imported file
	Import string `json:"import"` // Import text as written in the source
}

// Ranked is a file with a count, used for the most-imported listing.
type Ranked struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// Summary describes the import graph of a scan.
type Summary struct {
	Files      int        `json:"files"`
	Edges      int        `json:"edges"`
	Unresolved int        `json:"unresolved"` // Imports kept by the parser that map to no project file
	MostUsed   []Ranked   `json:"most_used"`
	Cycles     [][]string `json:"cycles,omitempty"`
}
