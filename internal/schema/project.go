package schema

// Project is a showcased video. Videos and thumbnails are hosted externally.
type Project struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	VideoURL    string   `json:"video_url" yaml:"video_url" validate:"required,http_url"`
	Thumbnail   string   `json:"thumbnail" yaml:"thumbnail" validate:"required,http_url"`
}

// Clone returns a deep copy, so callers cannot alter shared data through Tags.
func (p Project) Clone() Project {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
