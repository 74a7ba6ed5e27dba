package schema

// HTTPRequestFile is an HTTP request definition as stored in a
// *.http.yaml file. The variant is carried by the file suffix alone;
// there is no discriminant field inside the document.
type HTTPRequestFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Method      string     `yaml:"method"`
	URL         string     `yaml:"url"`
	Headers     []KeyValue `yaml:"headers,omitempty"`
	Params      []KeyValue `yaml:"params,omitempty"`
	Body        string     `yaml:"body,omitempty"`
}

// Validate checks that the document has the fields its role requires.
func (r *HTTPRequestFile) Validate() error {
	if r.Name == "" {
		return &ValidationError{Reason: "request name is required"}
	}
	if r.Method == "" {
		return &ValidationError{Reason: "http request method is required"}
	}
	if r.URL == "" {
		return &ValidationError{Reason: "http request url is required"}
	}
	return nil
}

// GRPCRequestFile is a gRPC request definition as stored in a
// *.grpc.yaml file.
type GRPCRequestFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	URL         string     `yaml:"url"`
	Service     string     `yaml:"service,omitempty"`
	Method      string     `yaml:"method,omitempty"`
	Message     string     `yaml:"message,omitempty"`
	Metadata    []KeyValue `yaml:"metadata,omitempty"`
}

// Validate checks that the document has the fields its role requires.
func (r *GRPCRequestFile) Validate() error {
	if r.Name == "" {
		return &ValidationError{Reason: "request name is required"}
	}
	if r.URL == "" {
		return &ValidationError{Reason: "grpc request url is required"}
	}
	return nil
}

// ReadHTTPRequestFile reads and validates a *.http.yaml document.
func ReadHTTPRequestFile(path string) (*HTTPRequestFile, error) {
	var doc HTTPRequestFile
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

// WriteHTTPRequestFile validates and writes a *.http.yaml document.
func WriteHTTPRequestFile(path string, doc *HTTPRequestFile) error {
	if err := doc.Validate(); err != nil {
		if verr, ok := err.(*ValidationError); ok {
			verr.Path = path
		}
		return err
	}
	return writeYAML(path, doc)
}

// ReadGRPCRequestFile reads and validates a *.grpc.yaml document.
func ReadGRPCRequestFile(path string) (*GRPCRequestFile, error) {
	var doc GRPCRequestFile
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

// WriteGRPCRequestFile validates and writes a *.grpc.yaml document.
func WriteGRPCRequestFile(path string, doc *GRPCRequestFile) error {
	if err := doc.Validate(); err != nil {
		if verr, ok := err.(*ValidationError); ok {
			verr.Path = path
		}
		return err
	}
	return writeYAML(path, doc)
}
