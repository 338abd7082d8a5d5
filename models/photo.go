package models

// Photo is the display shape handed to presentation consumers. It never
// carries the replica's checksum or local write time.
type Photo struct {
	ID            string   `json:"id"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Date          string   `json:"date"`
	Tags          []string `json:"tags"`
	Width         int      `json:"width,omitempty"`
	Height        int      `json:"height,omitempty"`
	Format        string   `json:"format,omitempty"`
	SourceWebsite string   `json:"source_website,omitempty"`
}

// ToPhoto maps a replica record to its display shape.
func ToPhoto(r ImageRecord) Photo {
	tags := make([]string, len(r.Tags))
	copy(tags, r.Tags)

	return Photo{
		ID:            r.ID,
		URL:           r.URL,
		Title:         r.Title,
		Description:   r.Description,
		Date:          r.Date,
		Tags:          tags,
		Width:         r.Width,
		Height:        r.Height,
		Format:        r.Format,
		SourceWebsite: r.SourceWebsite,
	}
}

// ToPhotos maps a slice of records, preserving order.
func ToPhotos(records []ImageRecord) []Photo {
	photos := make([]Photo, 0, len(records))
	for _, r := range records {
		photos = append(photos, ToPhoto(r))
	}
	return photos
}

// FromPhoto maps a display shape back to a record. Checksum and LastUpdated
// are left empty; the store stamps LastUpdated on save.
func FromPhoto(p Photo) ImageRecord {
	tags := make(Tags, len(p.Tags))
	copy(tags, p.Tags)

	return ImageRecord{
		ID:            p.ID,
		URL:           p.URL,
		Title:         p.Title,
		Description:   p.Description,
		Date:          p.Date,
		Tags:          tags,
		Width:         p.Width,
		Height:        p.Height,
		Format:        p.Format,
		SourceWebsite: p.SourceWebsite,
		TypeTags:      Tags{},
		PhraseTags:    Tags{},
	}
}
