package schema

// FolderFile is the optional per-folder metadata document, stored as
// _folder.yaml inside a folder's directory. Both fields are optional: a
// folder with no metadata file, or an unparseable one, degrades to the
// directory's base name with no description.
type FolderFile struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// ReadFolderFile reads a _folder.yaml document. There is nothing to
// validate beyond YAML well-formedness; missing fields are permitted.
func ReadFolderFile(path string) (*FolderFile, error) {
	var doc FolderFile
	if err := readYAML(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteFolderFile writes a _folder.yaml document.
func WriteFolderFile(path string, doc *FolderFile) error {
	return writeYAML(path, doc)
}
