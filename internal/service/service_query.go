package service

import (
	"cmp"
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/store"
	"github.com/MKhiriev/go-gallery-replica/models"
)

// Keyword scores, chosen by the field a keyword first matched: the title or
// a filename, the description, or anything else.
const (
	scoreNameField        = 3
	scoreDescriptionField = 2
	scoreOtherField       = 1
)

type imageService struct {
	storage store.ImageStorage
	now     func() time.Time

	logger *logger.Logger
}

// NewImageService builds the query engine over storage.
func NewImageService(storage store.ImageStorage, logger *logger.Logger) ImageService {
	return &imageService{
		storage: storage,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *imageService) Sample(ctx context.Context, n int) []models.ImageRecord {
	if n <= 0 {
		return []models.ImageRecord{}
	}

	if resident, ok := s.storage.Resident(); ok {
		return sampleSparse(resident, n)
	}

	all, err := s.storage.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "imageService.Sample").
			Msg("failed to read replica, returning empty sample")
		return []models.ImageRecord{}
	}

	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	return all[:min(n, len(all))]
}

// sampleSparse draws min(n, len(pool)) distinct records without touching
// pool. It runs a partial Fisher-Yates shuffle whose swaps are kept in a
// map, so the cost follows n rather than len(pool).
func sampleSparse(pool []models.ImageRecord, n int) []models.ImageRecord {
	k := min(n, len(pool))
	out := make([]models.ImageRecord, 0, k)
	swapped := make(map[int]int, k)

	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	for i := range k {
		j := i + rand.IntN(len(pool)-i)
		picked := at(j)
		swapped[j] = at(i)
		out = append(out, pool[picked].Clone())
	}

	return out
}

func (s *imageService) Search(ctx context.Context, query string) models.SearchResult {
	started := s.now()
	keywords := strings.Fields(strings.ToLower(query))

	all, err := s.storage.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "imageService.Search").
			Msg("failed to read replica, returning empty search result")
		all = []models.ImageRecord{}
	}

	if len(keywords) == 0 {
		return models.SearchResult{
			Results: all,
			Stats: models.SearchStats{
				TotalImages:    len(all),
				MatchedImages:  len(all),
				SearchKeywords: []string{},
				SearchTime:     s.now().Sub(started),
			},
		}
	}

	type match struct {
		record models.ImageRecord
		score  int
	}

	matches := make([]match, 0)
	for _, rec := range all {
		doc := newSearchDoc(rec)

		total := 0
		for _, kw := range keywords {
			score := doc.score(kw)
			if score == 0 {
				total = 0
				break
			}
			total += score
		}

		if total > 0 {
			matches = append(matches, match{record: rec, score: total})
		}
	}

	slices.SortStableFunc(matches, func(a, b match) int {
		return cmp.Compare(b.score, a.score)
	})

	results := make([]models.ImageRecord, len(matches))
	for i, m := range matches {
		results[i] = m.record
	}

	return models.SearchResult{
		Results: results,
		Stats: models.SearchStats{
			TotalImages:    len(all),
			MatchedImages:  len(results),
			SearchKeywords: keywords,
			SearchTime:     s.now().Sub(started),
		},
	}
}

// searchDoc is the case-folded searchable view of one record.
type searchDoc struct {
	texts       []string
	names       []string
	description string
}

func newSearchDoc(rec models.ImageRecord) searchDoc {
	title := strings.ToLower(rec.Title)
	description := strings.ToLower(rec.Description)
	filename := strings.ToLower(rec.Filename)
	originalFilename := strings.ToLower(rec.OriginalFilename)

	texts := make([]string, 0, 6+len(rec.Tags)+len(rec.TypeTags)+len(rec.PhraseTags))
	texts = append(texts,
		title,
		description,
		filename,
		originalFilename,
		strings.ToLower(rec.Format),
		strings.ToLower(rec.SourceWebsite),
	)
	for _, list := range []models.Tags{rec.Tags, rec.TypeTags, rec.PhraseTags} {
		for _, tag := range list {
			texts = append(texts, strings.ToLower(tag))
		}
	}

	return searchDoc{
		texts:       texts,
		names:       []string{title, filename, originalFilename},
		description: description,
	}
}

// score rates kw by the first text containing it, zero when none does.
// A text equal to the title or a filename scores highest, one equal to the
// description next.
func (d searchDoc) score(kw string) int {
	for _, text := range d.texts {
		if !strings.Contains(text, kw) {
			continue
		}

		switch {
		case slices.Contains(d.names, text):
			return scoreNameField
		case text == d.description:
			return scoreDescriptionField
		default:
			return scoreOtherField
		}
	}

	return 0
}

func (s *imageService) GetByID(ctx context.Context, id string) (models.ImageRecord, error) {
	return s.storage.GetByID(ctx, id)
}

func (s *imageService) Report(ctx context.Context) (models.ReplicaReport, error) {
	stats, err := s.storage.Stats(ctx)
	if err != nil {
		return models.ReplicaReport{}, err
	}

	bySource, err := s.storage.CountBy(ctx, "source_website")
	if err != nil {
		return models.ReplicaReport{}, err
	}

	byFormat, err := s.storage.CountBy(ctx, "format")
	if err != nil {
		return models.ReplicaReport{}, err
	}

	return models.ReplicaReport{
		TotalImages:      stats.TotalImages,
		StorageSize:      stats.StorageSize,
		StorageSizeHuman: humanize.Bytes(uint64(max(stats.StorageSize, 0))),
		LastSyncTime:     stats.LastSyncTime,
		NeedsSync:        s.storage.NeedsSync(ctx),
		BySource:         bySource,
		ByFormat:         byFormat,
	}, nil
}
