package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/healthbridge/backend/internal/models"
	"github.com/healthbridge/backend/internal/transport"
)

func TestCreateMedicine(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	med, err := svc.CreateMedicine(ctx, transport.MedicineRequest{
		Name:        "Paracetamol 500mg",
		Description: "Pain reliever",
		Category:    "Pain Relief",
		Price:       5990,
		Stock:       120,
	})
	require.NoError(t, err)
	require.NotZero(t, med.ID)

	got, err := svc.GetMedicine(ctx, med.ID)
	require.NoError(t, err)
	require.Equal(t, "Paracetamol 500mg", got.Name)
}

func TestCreateMedicineDuplicateName(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	req := transport.MedicineRequest{Name: "Paracetamol 500mg", Price: 5990, Stock: 120}
	_, err := svc.CreateMedicine(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateMedicine(ctx, req)
	require.ErrorIs(t, err, ErrConflict)
}

func TestCreateMedicineValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	_, err := svc.CreateMedicine(ctx, transport.MedicineRequest{Name: "  ", Price: 100})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateMedicine(ctx, transport.MedicineRequest{Name: "Bad Price", Price: -1})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateMedicine(ctx, transport.MedicineRequest{Name: "Bad Stock", Price: 100, Stock: -5})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateMedicineKeepsImageWhenOmitted(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	med, err := svc.CreateMedicine(ctx, transport.MedicineRequest{
		Name:     "Paracetamol 500mg",
		Price:    5990,
		Stock:    120,
		ImageURL: "https://img.example/para.png",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateMedicine(ctx, med.ID, transport.MedicineRequest{
		Name:  "Paracetamol 500mg",
		Price: 6490,
		Stock: 100,
	})
	require.NoError(t, err)
	require.Equal(t, int64(6490), updated.Price)
	require.Equal(t, "https://img.example/para.png", updated.ImageURL)
}

func TestUpdateMedicineNotFound(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	_, err := svc.UpdateMedicine(context.Background(), 404, transport.MedicineRequest{Name: "X", Price: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMedicine(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	med, err := svc.CreateMedicine(ctx, transport.MedicineRequest{Name: "Paracetamol 500mg", Price: 5990})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMedicine(ctx, med.ID))
	require.ErrorIs(t, svc.DeleteMedicine(ctx, med.ID), ErrNotFound)
}

func TestSearchMedicinesFallsBackToDatabase(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	createMedicine(t, r, "Paracetamol 500mg", 5990, 120)
	createMedicine(t, r, "Ibuprofen 200mg", 7490, 80)

	meds, err := svc.SearchMedicines(ctx, "paracetamol")
	require.NoError(t, err)

	// sqlite LIKE is case-insensitive for ASCII
	require.Len(t, meds, 1)
	require.Equal(t, "Paracetamol 500mg", meds[0].Name)

	_, err = svc.SearchMedicines(ctx, "  ")
	require.ErrorIs(t, err, ErrValidation)
}

func TestMedicinesByCategory(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	a := createMedicine(t, r, "Paracetamol 500mg", 5990, 120)
	a.Category = "Pain Relief"
	require.NoError(t, r.SaveMedicine(ctx, a))
	b := createMedicine(t, r, "Cetirizine 10mg", 8990, 60)
	b.Category = "Allergy"
	require.NoError(t, r.SaveMedicine(ctx, b))

	meds, err := svc.MedicinesByCategory(ctx, "Allergy")
	require.NoError(t, err)
	require.Len(t, meds, 1)
	require.Equal(t, "Cetirizine 10mg", meds[0].Name)
}

func TestDiseases(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	d := &models.Disease{
		Name:        "Common Cold",
		Category:    "Respiratory",
		Description: "Viral infection of the nose and throat.",
		Symptoms:    "Runny nose, sneezing",
		Treatment:   "Rest and fluids",
	}
	require.NoError(t, r.CreateDisease(ctx, d))

	all, err := svc.GetDiseases(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := svc.GetDisease(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "Common Cold", got.Name)

	found, err := svc.SearchDiseases(ctx, "sneezing")
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = svc.GetDisease(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
}
