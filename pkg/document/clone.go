package document

// Clone returns a deep copy of the document. History snapshots and binding
// application rely on copies being fully independent of the original.
func (d TemplateDocument) Clone() TemplateDocument {
	out := d

	if d.Tags != nil {
		out.Tags = append([]string(nil), d.Tags...)
	}
	if d.Layers != nil {
		out.Layers = append([]Layer(nil), d.Layers...)
	}
	if d.Elements != nil {
		out.Elements = make([]TemplateElement, len(d.Elements))
		for i, el := range d.Elements {
			out.Elements[i] = el.Clone()
		}
	}
	if d.Bindings != nil {
		out.Bindings = make(map[string]DataBinding, len(d.Bindings))
		for name, b := range d.Bindings {
			out.Bindings[name] = b
		}
	}
	if d.Variables != nil {
		out.Variables = append([]TemplateVariable(nil), d.Variables...)
	}
	return out
}

// Clone returns a deep copy of the element. Props payloads are plain value
// structs, so a value copy is already deep for them.
func (e TemplateElement) Clone() TemplateElement {
	out := e
	out.Style = e.Style.Clone()
	if e.Condition != nil {
		cond := *e.Condition
		out.Condition = &cond
	}
	if e.Bindings != nil {
		out.Bindings = make(map[string]DataBinding, len(e.Bindings))
		for path, b := range e.Bindings {
			out.Bindings[path] = b
		}
	}
	if e.Children != nil {
		out.Children = append([]string(nil), e.Children...)
	}
	return out
}

// ElementByID returns the element with the given id, if present.
func (d TemplateDocument) ElementByID(id string) (TemplateElement, bool) {
	for _, el := range d.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return TemplateElement{}, false
}

// LayerByID returns the layer with the given id, if present.
func (d TemplateDocument) LayerByID(id string) (Layer, bool) {
	for _, layer := range d.Layers {
		if layer.ID == id {
			return layer, true
		}
	}
	return Layer{}, false
}
