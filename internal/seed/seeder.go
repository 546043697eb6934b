// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"synthlab/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password assigned to every seeded account.
const DemoPassword = "password123"

var tagNames = []string{
	"Exothermic", "Endothermic", "Catalyzed", "High Pressure", "Aqueous",
	"Organic", "Inorganic", "Volatile", "Stable", "Photosensitive",
}

var componentNames = []string{
	"Hydrogen", "Helium", "Lithium", "Carbon", "Nitrogen", "Oxygen",
	"Sodium", "Sulfur", "Chlorine", "Iron", "Copper", "Silver", "Gold",
}

// Seeder populates the database with generated demo data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes every row from the domain tables, join tables included.
func (s *Seeder) ClearAll() error {
	tables := []string{"synthesize_tags", "synthesize_chemcomps", "synthesizes", "tags", "chem_components", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Cleared all domain tables")
	return nil
}

// CreateSuperuser creates an account with staff and superuser flags set.
func (s *Seeder) CreateSuperuser(email, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:       email,
		Name:        "Administrator",
		Password:    string(hashed),
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SeedUsers creates n demo accounts, each with a personal set of tags,
// chemical components and synthesize records referencing them.
func (s *Seeder) SeedUsers(n, recordsPerUser int) ([]models.User, error) {
	// One shared hash: bcrypt per user makes large seeds crawl.
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Email:    gofakeit.Email(),
			Name:     gofakeit.Name(),
			Password: string(hashed),
			IsActive: true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}

		tags, comps, err := s.seedCatalog(&user)
		if err != nil {
			return nil, err
		}
		if err := s.seedRecords(&user, tags, comps, recordsPerUser); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	log.Printf("Seeded %d users with %d records each", n, recordsPerUser)
	return users, nil
}

func (s *Seeder) seedCatalog(user *models.User) ([]models.Tag, []models.ChemComponent, error) {
	var tags []models.Tag
	for _, name := range pickSome(s.rng, tagNames, 3, 6) {
		tag := models.Tag{Name: name, UserID: user.ID}
		if err := s.db.Create(&tag).Error; err != nil {
			return nil, nil, fmt.Errorf("creating tag: %w", err)
		}
		tags = append(tags, tag)
	}

	var comps []models.ChemComponent
	for _, name := range pickSome(s.rng, componentNames, 3, 8) {
		comp := models.ChemComponent{Name: name, UserID: user.ID}
		if err := s.db.Create(&comp).Error; err != nil {
			return nil, nil, fmt.Errorf("creating component: %w", err)
		}
		comps = append(comps, comp)
	}

	return tags, comps, nil
}

func (s *Seeder) seedRecords(user *models.User, tags []models.Tag, comps []models.ChemComponent, count int) error {
	for i := 0; i < count; i++ {
		chance := decimal.NewFromFloat(s.rng.Float64() * 100).Round(2)
		rec := models.Synthesize{
			Title:          gofakeit.AdjectiveDescriptive() + " " + gofakeit.NounConcrete(),
			UserID:         user.ID,
			TimeYears:      s.rng.Intn(30) + 1,
			Chance:         chance,
			Link:           gofakeit.URL(),
			Tags:           sampleTags(s.rng, tags),
			ChemComponents: sampleComps(s.rng, comps),
		}
		if err := s.db.Create(&rec).Error; err != nil {
			return fmt.Errorf("creating record: %w", err)
		}
	}
	return nil
}

func pickSome(rng *rand.Rand, pool []string, min, max int) []string {
	n := min + rng.Intn(max-min+1)
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := append([]string(nil), pool...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func sampleTags(rng *rand.Rand, tags []models.Tag) []models.Tag {
	if len(tags) == 0 {
		return nil
	}
	n := rng.Intn(len(tags)) + 1
	shuffled := append([]models.Tag(nil), tags...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func sampleComps(rng *rand.Rand, comps []models.ChemComponent) []models.ChemComponent {
	if len(comps) == 0 {
		return nil
	}
	n := rng.Intn(len(comps)) + 1
	shuffled := append([]models.ChemComponent(nil), comps...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
