package store

import (
	"github.com/restdeck/restdeck/internal/model"
	"github.com/restdeck/restdeck/internal/schema"
)

// Conversions between on-disk documents and in-memory entities. Loading
// injects fresh ephemeral identifiers into every entity and nested entry;
// saving strips them again, so the documents never carry ids.

func collectionFromFile(doc *schema.CollectionFile) *model.Collection {
	col := &model.Collection{
		ID:          model.NewID(),
		Name:        doc.Name,
		Description: doc.Description,
	}
	if doc.Auth != nil {
		col.Auth = &model.Auth{
			Type:     doc.Auth.Type,
			Token:    doc.Auth.Token,
			Username: doc.Auth.Username,
			Password: doc.Auth.Password,
		}
	}
	for _, v := range doc.Variables {
		col.Variables = append(col.Variables, model.Variable{
			ID:          model.NewID(),
			Key:         v.Key,
			Value:       v.Value,
			Enabled:     v.IsEnabled(),
			Description: v.Description,
		})
	}
	return col
}

func collectionToFile(col *model.Collection) *schema.CollectionFile {
	doc := &schema.CollectionFile{
		Name:        col.Name,
		Description: col.Description,
	}
	if col.Auth != nil {
		doc.Auth = &schema.Auth{
			Type:     col.Auth.Type,
			Token:    col.Auth.Token,
			Username: col.Auth.Username,
			Password: col.Auth.Password,
		}
	}
	for _, v := range col.Variables {
		doc.Variables = append(doc.Variables, schema.Variable{
			Key:         v.Key,
			Value:       v.Value,
			Enabled:     enabledFlag(v.Enabled),
			Description: v.Description,
		})
	}
	return doc
}

func httpRequestFromFile(doc *schema.HTTPRequestFile) *model.HTTPRequest {
	return &model.HTTPRequest{
		ID:          model.NewID(),
		Method:      doc.Method,
		URL:         doc.URL,
		Headers:     keyValuesFromFile(doc.Headers),
		Params:      keyValuesFromFile(doc.Params),
		Body:        doc.Body,
		Description: doc.Description,
	}
}

func httpRequestToFile(name string, req *model.HTTPRequest) *schema.HTTPRequestFile {
	return &schema.HTTPRequestFile{
		Name:        name,
		Description: req.Description,
		Method:      req.Method,
		URL:         req.URL,
		Headers:     keyValuesToFile(req.Headers),
		Params:      keyValuesToFile(req.Params),
		Body:        req.Body,
	}
}

func grpcRequestFromFile(doc *schema.GRPCRequestFile) *model.GRPCRequest {
	return &model.GRPCRequest{
		ID:          model.NewID(),
		URL:         doc.URL,
		Service:     doc.Service,
		Method:      doc.Method,
		Message:     doc.Message,
		Metadata:    keyValuesFromFile(doc.Metadata),
		Description: doc.Description,
	}
}

func grpcRequestToFile(name string, req *model.GRPCRequest) *schema.GRPCRequestFile {
	return &schema.GRPCRequestFile{
		Name:        name,
		Description: req.Description,
		URL:         req.URL,
		Service:     req.Service,
		Method:      req.Method,
		Message:     req.Message,
		Metadata:    keyValuesToFile(req.Metadata),
	}
}

func keyValuesFromFile(entries []schema.KeyValue) []model.KeyValue {
	if len(entries) == 0 {
		return nil
	}
	out := make([]model.KeyValue, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.KeyValue{
			ID:          model.NewID(),
			Key:         e.Key,
			Value:       e.Value,
			Enabled:     e.IsEnabled(),
			Description: e.Description,
		})
	}
	return out
}

func keyValuesToFile(entries []model.KeyValue) []schema.KeyValue {
	if len(entries) == 0 {
		return nil
	}
	out := make([]schema.KeyValue, 0, len(entries))
	for _, e := range entries {
		out = append(out, schema.KeyValue{
			Key:         e.Key,
			Value:       e.Value,
			Enabled:     enabledFlag(e.Enabled),
			Description: e.Description,
		})
	}
	return out
}

// enabledFlag maps the in-memory bool onto the on-disk tri-state: enabled
// entries omit the key, disabled entries serialize "enabled: false".
func enabledFlag(enabled bool) *bool {
	if enabled {
		return nil
	}
	f := false
	return &f
}
