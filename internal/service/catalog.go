package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/healthbridge/backend/internal/models"
	"github.com/healthbridge/backend/internal/repo"
	"github.com/healthbridge/backend/internal/search"
	"github.com/healthbridge/backend/internal/transport"
	"github.com/healthbridge/backend/pkg/logging"
)

// CatalogService serves medicine and disease reads plus the admin
// medicine CRUD. ES is optional; with no client configured search goes
// straight to the database.
type CatalogService struct {
	Repo *repo.GormRepo
	ES   *elasticsearch.Client
}

func (s *CatalogService) GetMedicine(ctx context.Context, id uint) (*models.Medicine, error) {
	med, err := s.Repo.GetMedicine(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("medicine %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return med, nil
}

func (s *CatalogService) GetMedicines(ctx context.Context) ([]models.Medicine, error) {
	return s.Repo.GetMedicines(ctx)
}

func (s *CatalogService) SearchMedicines(ctx context.Context, q string) ([]models.Medicine, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("query is required: %w", ErrValidation)
	}

	if s.ES != nil {
		_, meds, err := search.Medicines(ctx, s.ES, q, 0, 50)
		if err == nil {
			return meds, nil
		}
		logging.FromContext(ctx).Warn("es_search_failed, falling back to db", "error", err)
	}
	return s.Repo.SearchMedicines(ctx, q)
}

func (s *CatalogService) MedicinesByCategory(ctx context.Context, category string) ([]models.Medicine, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("category is required: %w", ErrValidation)
	}
	return s.Repo.MedicinesByCategory(ctx, category)
}

func (s *CatalogService) CreateMedicine(ctx context.Context, req transport.MedicineRequest) (*models.Medicine, error) {
	if err := validateMedicine(req); err != nil {
		return nil, err
	}

	if _, err := s.Repo.GetMedicineByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("medicine %q already exists: %w", req.Name, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	med := &models.Medicine{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}
	if err := s.Repo.CreateMedicine(ctx, med); err != nil {
		return nil, err
	}
	s.index(ctx, med)
	return med, nil
}

func (s *CatalogService) UpdateMedicine(ctx context.Context, id uint, req transport.MedicineRequest) (*models.Medicine, error) {
	if err := validateMedicine(req); err != nil {
		return nil, err
	}

	med, err := s.Repo.GetMedicine(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("medicine %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	med.Name = req.Name
	med.Description = req.Description
	med.Category = req.Category
	med.Price = req.Price
	med.Stock = req.Stock
	if req.ImageURL != "" {
		med.ImageURL = req.ImageURL
	}

	if err := s.Repo.SaveMedicine(ctx, med); err != nil {
		return nil, err
	}
	s.index(ctx, med)
	return med, nil
}

func (s *CatalogService) DeleteMedicine(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteMedicine(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("medicine %d: %w", id, ErrNotFound)
		}
		return err
	}
	if s.ES != nil {
		if err := search.DeleteMedicine(ctx, s.ES, id); err != nil {
			logging.FromContext(ctx).Warn("es_delete_failed", "medicine_id", id, "error", err)
		}
	}
	return nil
}

func (s *CatalogService) GetDisease(ctx context.Context, id uint) (*models.Disease, error) {
	d, err := s.Repo.GetDisease(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("disease %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (s *CatalogService) GetDiseases(ctx context.Context) ([]models.Disease, error) {
	return s.Repo.GetDiseases(ctx)
}

func (s *CatalogService) SearchDiseases(ctx context.Context, q string) ([]models.Disease, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("query is required: %w", ErrValidation)
	}
	return s.Repo.SearchDiseases(ctx, q)
}

func validateMedicine(req transport.MedicineRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}
	if req.Stock < 0 {
		return fmt.Errorf("stock cannot be negative: %w", ErrValidation)
	}
	return nil
}

func (s *CatalogService) index(ctx context.Context, med *models.Medicine) {
	if s.ES == nil {
		return
	}
	if err := search.IndexMedicine(ctx, s.ES, med); err != nil {
		logging.FromContext(ctx).Warn("es_index_failed", "medicine_id", med.ID, "error", err)
	}
}
