package repository

import (
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
)

// packageRepository implements the PackageRepository interface
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository instance
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

func (r *packageRepository) GetByID(id uint) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetAll returns every package, for the analytics filter dropdown.
func (r *packageRepository) GetAll() ([]models.Package, error) {
	var pkgs []models.Package
	err := r.db.Order("id").Find(&pkgs).Error
	return pkgs, err
}

func (r *packageRepository) Update(pkg *models.Package) error {
	return r.db.Save(pkg).Error
}

func (r *packageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Package{}, id).Error
}

func (r *packageRepository) List(offset, limit int) ([]models.Package, error) {
	var pkgs []models.Package
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&pkgs).Error
	return pkgs, err
}

func (r *packageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Package{}).Count(&count).Error
	return count, err
}
