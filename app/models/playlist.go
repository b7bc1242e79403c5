package models

import (
	"time"

	"gorm.io/gorm"
)

type Playlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Published bool           `gorm:"type:tinyint(1);default:0" json:"published"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PlaylistVideo is the ordered join between playlists and videos.
type PlaylistVideo struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PlaylistID uint   `gorm:"not null;index:idx_playlist_video,unique,priority:1" json:"playlist_id"`
	VideoID    uint   `gorm:"not null;index:idx_playlist_video,unique,priority:2" json:"video_id"`
	Video      *Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	Position   int    `gorm:"default:0" json:"position"`
}
