package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-gallery-replica/models"
)

const (
	imagesTable = "images"
	statsTable  = "replica_stats"

	// statsRowID is the primary key of the single stats row.
	statsRowID = 1

	// saveChunkSize bounds the rows of one multi-row INSERT so the statement
	// stays under SQLite's bound-parameter limit.
	saveChunkSize = 200
)

// sqlite builds statements with "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var imageColumns = []string{
	"id",
	"remote_id",
	"dataset_id",
	"url",
	"title",
	"description",
	"image_date",
	"tags",
	"width",
	"height",
	"format",
	"source_website",
	"filename",
	"original_filename",
	"type_tags",
	"phrase_tags",
	"checksum",
	"last_updated",
}

// groupableColumns are the columns CountImagesBy accepts.
var groupableColumns = map[string]struct{}{
	"source_website": {},
	"format":         {},
}

var upsertImagesSuffix = buildUpsertSuffix("id", imageColumns[1:])

var upsertStatsSuffix = buildUpsertSuffix("id", []string{"total_images", "last_sync_time", "storage_size"})

func buildUpsertSuffix(key string, columns []string) string {
	set := make([]string, 0, len(columns))
	for _, c := range columns {
		set = append(set, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	return fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET %s", key, strings.Join(set, ", "))
}

func buildSelectAllImagesQuery() (string, []any, error) {
	return sqlite.Select(imageColumns...).
		From(imagesTable).
		OrderBy("rowid").
		ToSql()
}

func buildSelectImageByIDQuery(id string) (string, []any, error) {
	return sqlite.Select(imageColumns...).
		From(imagesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpsertImagesQuery builds one multi-row upsert. The caller keeps the
// batch within saveChunkSize.
func buildUpsertImagesQuery(records []models.ImageRecord, writtenAt time.Time) (string, []any, error) {
	insert := sqlite.Insert(imagesTable).Columns(imageColumns...)
	for _, r := range records {
		insert = insert.Values(
			r.ID,
			r.RemoteID,
			r.DatasetID,
			r.URL,
			r.Title,
			r.Description,
			r.Date,
			r.Tags,
			r.Width,
			r.Height,
			r.Format,
			r.SourceWebsite,
			r.Filename,
			r.OriginalFilename,
			r.TypeTags,
			r.PhraseTags,
			r.Checksum,
			writtenAt.UnixMilli(),
		)
	}

	return insert.Suffix(upsertImagesSuffix).ToSql()
}

func buildCountImagesQuery() (string, []any, error) {
	return sqlite.Select("COUNT(*)").From(imagesTable).ToSql()
}

func buildCountImagesByQuery(column string) (string, []any, error) {
	if _, ok := groupableColumns[column]; !ok {
		return "", nil, fmt.Errorf("column %q cannot be grouped", column)
	}

	return sqlite.Select(column, "COUNT(*)").
		From(imagesTable).
		GroupBy(column).
		OrderBy(column).
		ToSql()
}

func buildDeleteImagesQuery() (string, []any, error) {
	return sqlite.Delete(imagesTable).ToSql()
}

func buildDeleteStatsQuery() (string, []any, error) {
	return sqlite.Delete(statsTable).ToSql()
}

func buildSelectStatsQuery() (string, []any, error) {
	return sqlite.Select("total_images", "last_sync_time", "storage_size").
		From(statsTable).
		Where(sq.Eq{"id": statsRowID}).
		ToSql()
}

func buildUpsertStatsQuery(stats models.ReplicaStats) (string, []any, error) {
	return sqlite.Insert(statsTable).
		Columns("id", "total_images", "last_sync_time", "storage_size").
		Values(statsRowID, stats.TotalImages, models.EpochMillis(stats.LastSyncTime), stats.StorageSize).
		Suffix(upsertStatsSuffix).
		ToSql()
}
