package catalog

// Book is one catalog entry. Id is assigned by the Catalog and never
// changes afterwards.
type Book struct {
	Id        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Isbn      string `json:"isbn"`
	Summary   string `json:"summary"`
	Dewey     string `json:"dewey"`
	Available bool   `json:"available"`
}

// Fields carries the editable attributes of a Book. On Update an empty
// field means "leave as is".
type Fields struct {
	Title   string `json:"title,omitempty"`
	Author  string `json:"author,omitempty"`
	Isbn    string `json:"isbn,omitempty"`
	Summary string `json:"summary,omitempty"`
	Dewey   string `json:"dewey,omitempty"`
}

func (b *Book) patch(f Fields) {
	if f.Title != "" {
		b.Title = f.Title
	}
	if f.Author != "" {
		b.Author = f.Author
	}
	if f.Isbn != "" {
		b.Isbn = f.Isbn
	}
	if f.Summary != "" {
		b.Summary = f.Summary
	}
	if f.Dewey != "" {
		b.Dewey = f.Dewey
	}
}

// Less orders books by id, as required by the btree container.
func (b *Book) Less(than *Book) bool {
	return b.Id < than.Id
}
