package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"

	"github.com/grvbrk/tubelink-server/internal/models"
)

// ErrDuplicate is returned by CreateVideo when a record with the same
// youtube_id already exists. The unique index makes racing creates resolve to
// exactly one success.
var ErrDuplicate = errors.New("video already exists")

type PostgresVideoStore struct {
	db *sql.DB
}

func NewPostgresVideoStore(db *sql.DB) *PostgresVideoStore {
	if db == nil {
		panic("db cannot be nil for PostgresVideoStore")
	}
	return &PostgresVideoStore{db: db}
}

type VideoStore interface {
	FindByYoutubeID(youtubeID string) (*models.Video, error)
	CreateVideo(video *models.Video) error
	UpdateTags(youtubeID string, tags []string) (*models.Video, error)
	GetAllVideos() ([]models.Video, error)
}

const videoColumns = `
	id, youtube_id, url, tags, title, channel_title, duration, raw_duration,
	description, embed_url, thumbnails, created_at, updated_at
`

// FindByYoutubeID returns the stored video or nil when none exists.
func (pg *PostgresVideoStore) FindByYoutubeID(youtubeID string) (*models.Video, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM videos
		WHERE youtube_id = $1
	`, videoColumns)

	video, err := scanVideo(pg.db.QueryRow(query, youtubeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find video: %w", err)
	}

	return video, nil
}

// CreateVideo persists a new video with both timestamps set to now. The
// caller gets ErrDuplicate when the identifier is already taken.
func (pg *PostgresVideoStore) CreateVideo(video *models.Video) error {
	query := `
		INSERT INTO videos (youtube_id, url, tags, title, channel_title, duration,
			raw_duration, description, embed_url, thumbnails, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id, created_at, updated_at
	`

	now := time.Now().UTC()
	err := pg.db.QueryRow(query,
		video.Youtube_ID,
		video.URL,
		pq.Array(video.Tags),
		video.Title,
		video.Channel_Title,
		video.Duration,
		video.Raw_Duration,
		video.Description,
		video.Embed_URL,
		[]byte(video.Thumbnails),
		now,
	).Scan(&video.Id, &video.Created_At, &video.Updated_At)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert video: %w", err)
	}

	return nil
}

// UpdateTags replaces the tag set and refreshes updated_at, leaving every
// other column as it was. It returns nil when no such video exists.
func (pg *PostgresVideoStore) UpdateTags(youtubeID string, tags []string) (*models.Video, error) {
	query := fmt.Sprintf(`
		UPDATE videos
		SET tags = $1, updated_at = $2
		WHERE youtube_id = $3
		RETURNING %s
	`, videoColumns)

	video, err := scanVideo(pg.db.QueryRow(query, pq.Array(tags), time.Now().UTC(), youtubeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update video tags: %w", err)
	}

	return video, nil
}

// GetAllVideos returns every stored video, newest first.
func (pg *PostgresVideoStore) GetAllVideos() ([]models.Video, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM videos
		ORDER BY created_at DESC
	`, videoColumns)

	rows, err := pg.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video row: %w", err)
		}
		videos = append(videos, *video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over video rows: %w", err)
	}

	return videos, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVideo(row rowScanner) (*models.Video, error) {
	var video models.Video
	var thumbnails []byte

	err := row.Scan(
		&video.Id,
		&video.Youtube_ID,
		&video.URL,
		pq.Array(&video.Tags),
		&video.Title,
		&video.Channel_Title,
		&video.Duration,
		&video.Raw_Duration,
		&video.Description,
		&video.Embed_URL,
		&thumbnails,
		&video.Created_At,
		&video.Updated_At,
	)
	if err != nil {
		return nil, err
	}

	video.Thumbnails = thumbnails
	return &video, nil
}
