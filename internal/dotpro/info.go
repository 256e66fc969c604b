package dotpro

import (
	"fmt"
	"os"
	"time"
)

// Info summarizes a decoded image's header for display.
type Info struct {
	Format      uint8  `json:"format"`
	Platform    string `json:"platform"`
	PlatformRaw string `json:"platform_raw"`
	PlatformID  uint32 `json:"platform_id"`
	Orbit       uint32 `json:"orbit"`
	Year        uint16 `json:"year"`
	Day         uint16 `json:"day"`
	TimeOfDayMs uint32 `json:"time_of_day_ms"`
	AcquiredAt  string `json:"acquired_at"`

	Projection     string `json:"projection"`
	ProjectionCode uint16 `json:"projection_code"`
	Rows           int    `json:"rows"`
	Columns        int    `json:"columns"`

	AnchorLatitude  float64 `json:"anchor_latitude"`
	AnchorLongitude float64 `json:"anchor_longitude"`
	LatitudeExtent  float64 `json:"latitude_extent"`
	LongitudeExtent float64 `json:"longitude_extent"`
	LatitudeStep    float64 `json:"latitude_step"`
	LongitudeStep   float64 `json:"longitude_step"`

	CalibrationA float64 `json:"calibration_a"`
	CalibrationB float64 `json:"calibration_b"`

	Revision      string `json:"revision,omitempty"`
	FileSizeBytes int64  `json:"file_size_bytes,omitempty"`
}

// Info returns the header summary of img.
func (img *Image) Info() Info {
	return Info{
		Format:          img.Header.Format,
		Platform:        img.Header.TrimmedPlatformName(),
		PlatformRaw:     img.Header.PlatformName(),
		PlatformID:      img.Header.PlatformID,
		Orbit:           img.Header.Orbit,
		Year:            img.Header.Year,
		Day:             img.Header.Day,
		TimeOfDayMs:     img.Header.TimeOfDay,
		AcquiredAt:      img.Header.AcquiredAt().Format(time.RFC3339Nano),
		Projection:      img.Grid.Projection.String(),
		ProjectionCode:  uint16(img.Grid.Projection),
		Rows:            int(img.Grid.Rows),
		Columns:         int(img.Grid.Columns),
		AnchorLatitude:  float64(img.Grid.AnchorLatitude),
		AnchorLongitude: float64(img.Grid.AnchorLongitude),
		LatitudeExtent:  float64(img.Grid.LatitudeExtent),
		LongitudeExtent: float64(img.Grid.LongitudeExtent),
		LatitudeStep:    float64(img.Grid.LatitudeStep),
		LongitudeStep:   float64(img.Grid.LongitudeStep),
		CalibrationA:    img.Calibration.A,
		CalibrationB:    img.Calibration.B,
	}
}

// LoadInfo loads path through cache and adds file details to the summary.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	info := img.Info()
	info.Revision = cache.Decoder().Revision().Name
	info.FileSizeBytes = stat.Size()
	return &info, nil
}
