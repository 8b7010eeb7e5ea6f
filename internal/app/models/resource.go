package models

// ResourceKind separates video/web resources from downloadable documents.
type ResourceKind string

const (
	ResourceVisual ResourceKind = "visual"
	ResourceText   ResourceKind = "text"
)

// Resource is a shared learning resource. Visual resources carry URL and
// Thumbnail; text resources carry FileName, FileSize and Downloads.
type Resource struct {
	ID          string       `json:"id" example:"v1"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Kind        ResourceKind `json:"kind,omitempty"`
	URL         string       `json:"url,omitempty"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	Type        string       `json:"type,omitempty" example:"YouTube"`
	FileName    string       `json:"fileName,omitempty"`
	FileSize    string       `json:"fileSize,omitempty" example:"2.3 MB"`
	Tags        []string     `json:"tags"`
	Rating      float64      `json:"rating" example:"4.9"`
	Downloads   int          `json:"downloads,omitempty"`
	AddedBy     string       `json:"addedBy"`
	AddedDate   string       `json:"addedDate"`
}

func (r Resource) validate(kind ResourceKind) error {
	if r.Title == "" {
		return invalid("resource", r.ID, "empty title")
	}
	if r.Kind != "" && r.Kind != kind {
		return invalid("resource", r.ID, "kind %q listed under %q", r.Kind, kind)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return invalid("resource", r.ID, "rating %.1f out of range", r.Rating)
	}
	switch kind {
	case ResourceVisual:
		if r.URL == "" {
			return invalid("resource", r.ID, "visual resource without url")
		}
	case ResourceText:
		if r.FileName == "" {
			return invalid("resource", r.ID, "text resource without file name")
		}
	}
	return nil
}

// ResourceLibrary is the persisted resources value: two lists keyed by kind.
type ResourceLibrary struct {
	Visual []Resource `json:"visual"`
	Text   []Resource `json:"text"`
}

// Validate implements Validatable. Ids are unique across both lists.
func (l ResourceLibrary) Validate() error {
	ids := make([]string, 0, len(l.Visual)+len(l.Text))
	for _, r := range l.Visual {
		if err := r.validate(ResourceVisual); err != nil {
			return err
		}
		ids = append(ids, r.ID)
	}
	for _, r := range l.Text {
		if err := r.validate(ResourceText); err != nil {
			return err
		}
		ids = append(ids, r.ID)
	}
	return uniqueIDs("resource", ids)
}

// Clone returns a deep copy.
func (l ResourceLibrary) Clone() ResourceLibrary {
	return ResourceLibrary{Visual: cloneResources(l.Visual), Text: cloneResources(l.Text)}
}

// All returns visual then text resources.
func (l ResourceLibrary) All() []Resource {
	return append(cloneResources(l.Visual), cloneResources(l.Text)...)
}

func cloneResources(in []Resource) []Resource {
	out := make([]Resource, len(in))
	for i, r := range in {
		r.Tags = cloneStrings(r.Tags)
		out[i] = r
	}
	return out
}
