package archive

import "gorm.io/gorm"

// SliceRecord is one stored slice.
type SliceRecord struct {
	gorm.Model
	Source        string `gorm:"index"`
	FromLongitude float64
	FromLatitude  float64
	ToLongitude   float64
	ToLatitude    float64
	PointCount    int

	Points []SlicePointRecord `gorm:"constraint:OnDelete:CASCADE"`
}

// SlicePointRecord is one sampled point of a stored slice.
type SlicePointRecord struct {
	ID            uint `gorm:"primaryKey"`
	SliceRecordID uint `gorm:"index"`
	Sequence      int
	X             int
	Y             int
	Longitude     float64
	Latitude      float64
	Brightness    uint16
	Temperature   float64
	Distance      float64
}
