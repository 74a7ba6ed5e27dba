package schema

import "fmt"

// CollectionFile is the root metadata document, stored as
// _collection.yaml at the top of a collection directory. Its absence is a
// hard load failure: a directory without one is not a collection.
type CollectionFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Auth        *Auth      `yaml:"auth,omitempty"`
	Variables   []Variable `yaml:"variables,omitempty"`
}

// Validate checks that the document has the fields its role requires.
func (c *CollectionFile) Validate() error {
	if c.Name == "" {
		return &ValidationError{Reason: "collection name is required"}
	}
	if c.Auth != nil && c.Auth.Type == "" {
		return &ValidationError{Reason: "auth requires a type"}
	}
	for i, v := range c.Variables {
		if v.Key == "" {
			return &ValidationError{Reason: fmt.Sprintf("variable %d requires a key", i)}
		}
	}
	return nil
}

// ReadCollectionFile reads and validates a _collection.yaml document.
func ReadCollectionFile(path string) (*CollectionFile, error) {
	var doc CollectionFile
	if err := readYAML(path, &doc); err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		if verr, ok := err.(*ValidationError); ok {
			verr.Path = path
		}
		return nil, err
	}

	return &doc, nil
}

// WriteCollectionFile validates and writes a _collection.yaml document.
func WriteCollectionFile(path string, doc *CollectionFile) error {
	if err := doc.Validate(); err != nil {
		if verr, ok := err.(*ValidationError); ok {
			verr.Path = path
		}
		return err
	}

	return writeYAML(path, doc)
}
