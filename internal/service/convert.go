package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-gallery-replica/models"
)

// maxTags bounds the display tags of one record.
const maxTags = 8

var extensionPattern = regexp.MustCompile(`\.[^/.]+$`)

// ConvertRemoteImage maps a catalog item to the local record shape.
// checksum is stored as given; LastUpdated is stamped by the store.
func ConvertRemoteImage(img models.RemoteImage, checksum string) models.ImageRecord {
	source := datasetTag(img.DatasetID)

	return models.ImageRecord{
		ID:               models.ImageRecordID(img.ID),
		URL:              img.MinioURL,
		Title:            titleFromFilename(img.Filename),
		Description:      describe(img),
		Date:             datePart(img.CreatedAt),
		Tags:             collectTags(img, source),
		Width:            img.Width,
		Height:           img.Height,
		Format:           img.Format,
		SourceWebsite:    source,
		RemoteID:         img.ID,
		DatasetID:        img.DatasetID,
		Filename:         img.Filename,
		OriginalFilename: img.OriginalFilename,
		TypeTags:         copyTags(img.TypeTags),
		PhraseTags:       copyTags(img.PhraseTags),
		Checksum:         checksum,
	}
}

func datasetTag(datasetID int64) string {
	return fmt.Sprintf("dataset-%d", datasetID)
}

// titleFromFilename drops the extension, turns '-' and '_' into spaces and
// upper-cases the first letter of every word.
func titleFromFilename(filename string) string {
	base := extensionPattern.ReplaceAllString(filename, "")
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	var b strings.Builder
	b.Grow(len(base))

	prevWord := false
	for _, r := range base {
		word := isWordRune(r)
		if word && !prevWord && 'a' <= r && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
		prevWord = word
	}

	return b.String()
}

// isWordRune matches the ASCII word class [A-Za-z0-9_].
func isWordRune(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}

func describe(img models.RemoteImage) string {
	if len(img.NaturalTags) > 0 && img.NaturalTags[0] != "" {
		return img.NaturalTags[0]
	}
	if len(img.PhraseTags) > 0 && img.PhraseTags[0] != "" {
		return img.PhraseTags[0]
	}
	return fmt.Sprintf("Image from dataset %d", img.DatasetID)
}

func datePart(createdAt string) string {
	date, _, _ := strings.Cut(createdAt, "T")
	return date
}

func collectTags(img models.RemoteImage, source string) models.Tags {
	tags := make(models.Tags, 0, maxTags)

	candidates := make([]string, 0, len(img.TypeTags)+len(img.PhraseTags)+2)
	candidates = append(candidates, img.TypeTags...)
	candidates = append(candidates, img.PhraseTags...)
	candidates = append(candidates, img.Format, source)

	for _, tag := range candidates {
		if tag == "" {
			continue
		}
		if len(tags) == maxTags {
			break
		}
		tags = append(tags, tag)
	}

	return tags
}

func copyTags(tags []string) models.Tags {
	out := make(models.Tags, len(tags))
	copy(out, tags)
	return out
}
