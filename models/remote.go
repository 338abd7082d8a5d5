package models

import "encoding/json"

// RemoteImage is a single image item as returned by the remote catalog API.
type RemoteImage struct {
	ID                int64           `json:"id"`
	DatasetID         int64           `json:"dataset_id"`
	OriginalImageID   *int64          `json:"original_image_id,omitempty"`
	OriginalFilename  string          `json:"original_filename"`
	MinioObjectName   string          `json:"minio_object_name"`
	MinioURL          string          `json:"minio_url"`
	Filename          string          `json:"filename"`
	FileSize          int64           `json:"file_size"`
	Width             int             `json:"width"`
	Height            int             `json:"height"`
	Format            string          `json:"format"`
	TypeTags          []string        `json:"type_tags"`
	PhraseTags        []string        `json:"phrase_tags"`
	NaturalTags       []string        `json:"natural_tags"`
	RawAnnotationData json.RawMessage `json:"raw_annotation_data,omitempty"`
	AnnotationMethod  string          `json:"annotation_method"`
	AnnotationModel   string          `json:"annotation_model"`
	ConfidenceScore   float64         `json:"confidence_score"`
	QualityScore      float64         `json:"quality_score"`
	IsVerified        bool            `json:"is_verified"`
	VerificationNotes string          `json:"verification_notes,omitempty"`
	ImageMetadata     json.RawMessage `json:"image_metadata,omitempty"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

// RemotePage is one page of the remote catalog listing.
type RemotePage struct {
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	Images     []RemoteImage `json:"images"`
}

// RemoteStats holds aggregate totals reported by the remote catalog.
type RemoteStats struct {
	TotalImages         int     `json:"total_images"`
	TotalDatasets       int     `json:"total_datasets"`
	TotalFileSize       int64   `json:"total_file_size"`
	TotalFileSizeMB     float64 `json:"total_file_size_mb"`
	AvgConfidenceScore  float64 `json:"avg_confidence_score"`
	AvgQualityScore     float64 `json:"avg_quality_score"`
	VerifiedImages      int     `json:"verified_images"`
	VerificationRate    float64 `json:"verification_rate"`
	AvgImagesPerDataset float64 `json:"avg_images_per_dataset"`

	// Approximate is set when the stats endpoint was unavailable and the
	// totals were taken from a one-item page instead.
	Approximate bool `json:"-"`
}
