package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/healthbridge/backend/internal/models"
)

func (r *GormRepo) GetMedicine(ctx context.Context, id uint) (*models.Medicine, error) {
	var med models.Medicine
	if err := r.DB.WithContext(ctx).First(&med, id).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

func (r *GormRepo) GetMedicines(ctx context.Context) ([]models.Medicine, error) {
	var meds []models.Medicine
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&meds).Error; err != nil {
		return nil, err
	}
	return meds, nil
}

func (r *GormRepo) SearchMedicines(ctx context.Context, q string) ([]models.Medicine, error) {
	pattern := "%" + q + "%"
	var meds []models.Medicine
	if err := r.DB.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ? OR category LIKE ?", pattern, pattern, pattern).
		Order("id ASC").
		Find(&meds).Error; err != nil {
		return nil, err
	}
	return meds, nil
}

func (r *GormRepo) MedicinesByCategory(ctx context.Context, category string) ([]models.Medicine, error) {
	var meds []models.Medicine
	if err := r.DB.WithContext(ctx).
		Where("category LIKE ?", "%"+category+"%").
		Order("id ASC").
		Find(&meds).Error; err != nil {
		return nil, err
	}
	return meds, nil
}

func (r *GormRepo) GetMedicineByName(ctx context.Context, name string) (*models.Medicine, error) {
	var med models.Medicine
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

func (r *GormRepo) CreateMedicine(ctx context.Context, med *models.Medicine) error {
	return r.DB.WithContext(ctx).Create(med).Error
}

func (r *GormRepo) CountMedicines(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Medicine{}).Count(&n).Error
	return n, err
}

func (r *GormRepo) SaveMedicine(ctx context.Context, med *models.Medicine) error {
	return r.DB.WithContext(ctx).Save(med).Error
}

func (r *GormRepo) DeleteMedicine(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Medicine{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TryDecrementStock is the inventory ledger's compare-and-decrement.
// The WHERE guard makes the whole check-and-take one statement, so
// stock can never go below zero no matter how many checkouts race.
func (r *GormRepo) TryDecrementStock(ctx context.Context, medicineID uint, quantity uint) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Medicine{}).
		Where("id = ? AND stock >= ?", medicineID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) CreateDisease(ctx context.Context, d *models.Disease) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

func (r *GormRepo) CountDiseases(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Disease{}).Count(&n).Error
	return n, err
}

func (r *GormRepo) GetDisease(ctx context.Context, id uint) (*models.Disease, error) {
	var d models.Disease
	if err := r.DB.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormRepo) GetDiseases(ctx context.Context) ([]models.Disease, error) {
	var ds []models.Disease
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

func (r *GormRepo) SearchDiseases(ctx context.Context, q string) ([]models.Disease, error) {
	pattern := "%" + q + "%"
	var ds []models.Disease
	if err := r.DB.WithContext(ctx).
		Where("name LIKE ? OR symptoms LIKE ? OR category LIKE ?", pattern, pattern, pattern).
		Order("id ASC").
		Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}
