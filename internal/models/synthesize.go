package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Synthesize is the composite record linking tags and chemical components
// with synthesis metadata. TimeYears is a positive duration in years and
// Chance is a fixed-point probability with two fractional digits,
// conventionally 0-100.
type Synthesize struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Title     string          `gorm:"not null" json:"title"`
	UserID    uint            `gorm:"not null;index" json:"-"`
	User      User            `gorm:"foreignKey:UserID" json:"-"`
	TimeYears int             `gorm:"not null" json:"time_years"`
	Chance    decimal.Decimal `gorm:"type:decimal(7,2)" json:"chance"`
	Link      string          `json:"link"`
	// Image holds the stored file path relative to the upload root,
	// e.g. "synthesize/<uuid>.jpg". Empty when no image was uploaded.
	Image          string          `json:"image"`
	Tags           []Tag           `gorm:"many2many:synthesize_tags;" json:"-"`
	ChemComponents []ChemComponent `gorm:"many2many:synthesize_chemcomps;" json:"-"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`
}

// TagIDs returns the identifiers of the associated tags.
func (s *Synthesize) TagIDs() []uint {
	ids := make([]uint, 0, len(s.Tags))
	for _, t := range s.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// ChemComponentIDs returns the identifiers of the associated components.
func (s *Synthesize) ChemComponentIDs() []uint {
	ids := make([]uint, 0, len(s.ChemComponents))
	for _, c := range s.ChemComponents {
		ids = append(ids, c.ID)
	}
	return ids
}
