package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sectorDatamodel "github.com/ankaahq/ankaa-access/internal/core/datamodel/sector"
	"github.com/ankaahq/ankaa-access/internal/sector"
	sectorPostgres "github.com/ankaahq/ankaa-access/internal/sector/postgres"
)

func TestSectorPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sector Postgres Suite")
}

// SQLiteSector is a SQLite-compatible model for testing
type SQLiteSector struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"column:name;uniqueIndex;not null"`
	Privileges string    `gorm:"column:privileges;not null;default:BASIC"`
	ManagerID  *int64    `gorm:"column:manager_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (SQLiteSector) TableName() string {
	return "sectors"
}

var _ = Describe("Sector PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo sector.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteSector{})
		Expect(err).NotTo(HaveOccurred())

		repo = sectorPostgres.NewSectorRepository(db)
	})

	Describe("Create", func() {
		It("should create a sector", func() {
			s := &sectorDatamodel.Sector{
				Name:       "Warehouse",
				Privileges: "WAREHOUSE",
			}

			err := repo.Create(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.ID).To(BeNumerically(">", 0))
		})

		It("should reject duplicate names", func() {
			Expect(repo.Create(&sectorDatamodel.Sector{Name: "Warehouse", Privileges: "WAREHOUSE"})).To(Succeed())

			err := repo.Create(&sectorDatamodel.Sector{Name: "Warehouse", Privileges: "BASIC"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetByID", func() {
		It("should return nil for a missing sector", func() {
			s, err := repo.GetByID(42)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(BeNil())
		})

		It("should return the stored sector", func() {
			created := &sectorDatamodel.Sector{Name: "Production A", Privileges: "PRODUCTION"}
			Expect(repo.Create(created)).To(Succeed())

			s, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Name).To(Equal("Production A"))
			Expect(s.Privileges).To(Equal("PRODUCTION"))
		})
	})

	Describe("Update", func() {
		It("should persist a manager assignment", func() {
			created := &sectorDatamodel.Sector{Name: "Production A", Privileges: "PRODUCTION"}
			Expect(repo.Create(created)).To(Succeed())

			managerID := int64(7)
			created.ManagerID = &managerID
			Expect(repo.Update(created)).To(Succeed())

			s, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.ManagerID).NotTo(BeNil())
			Expect(*s.ManagerID).To(Equal(managerID))
		})
	})

	Describe("GetAll", func() {
		It("should order sectors by name", func() {
			Expect(repo.Create(&sectorDatamodel.Sector{Name: "Warehouse", Privileges: "WAREHOUSE"})).To(Succeed())
			Expect(repo.Create(&sectorDatamodel.Sector{Name: "Administration", Privileges: "ADMIN"})).To(Succeed())

			sectors, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(sectors).To(HaveLen(2))
			Expect(sectors[0].Name).To(Equal("Administration"))
			Expect(sectors[1].Name).To(Equal("Warehouse"))
		})
	})

	Describe("Delete", func() {
		It("should remove the sector", func() {
			created := &sectorDatamodel.Sector{Name: "Warehouse", Privileges: "WAREHOUSE"}
			Expect(repo.Create(created)).To(Succeed())

			Expect(repo.Delete(created.ID)).To(Succeed())

			s, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(BeNil())
		})
	})
})
