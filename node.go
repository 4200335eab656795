package nodelens

import "github.com/google/uuid"

// Node is one addressable point of a document: an identifier, the structural
// path locating it, and the flattened list of its immediate fields. The node
// is the authoritative view; edit sessions work on a transient copy of Rows.
type Node struct {
	ID   string
	Path Path
	Rows []Row
}

// NodeAt builds the node addressed by path inside data. An unresolvable path
// addresses the document root, mirroring Resolve.
func NodeAt(data []byte, path Path) (Node, error) {
	doc, err := Parse(data)
	if err != nil {
		return Node{}, err
	}
	return Node{
		ID:   uuid.NewString(),
		Path: path,
		Rows: RowsOf(doc.Resolve(path)),
	}, nil
}
