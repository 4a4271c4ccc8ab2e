package seed

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/healthbridge/backend/internal/models"
	"github.com/healthbridge/backend/internal/repo"
	"github.com/healthbridge/backend/pkg/hash"
	"github.com/healthbridge/backend/pkg/logging"
)

// Run makes sure a fresh database has an admin account and a starter
// catalog. Existing rows are never touched, so the seed is safe to run
// on every boot.
func Run(ctx context.Context, r *repo.GormRepo, adminEmail, adminPassword string) error {
	if err := ensureAdmin(ctx, r, adminEmail, adminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedMedicines(ctx, r); err != nil {
		return fmt.Errorf("seed medicines: %w", err)
	}
	if err := seedDiseases(ctx, r); err != nil {
		return fmt.Errorf("seed diseases: %w", err)
	}
	return nil
}

func ensureAdmin(ctx context.Context, r *repo.GormRepo, email, password string) error {
	if email == "" || password == "" {
		logging.FromContext(ctx).Warn("admin credentials not configured, skipping admin seed")
		return nil
	}

	_, err := r.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	pwHash, err := hash.Password(password)
	if err != nil {
		return err
	}
	admin := &models.User{
		Email:        email,
		PasswordHash: pwHash,
		Name:         "Administrator",
		Role:         "admin",
	}
	if err := r.CreateUser(ctx, admin); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("admin_user_seeded", "email", email)
	return nil
}

// Prices are stored in minor currency units.
func seedMedicines(ctx context.Context, r *repo.GormRepo) error {
	n, err := r.CountMedicines(ctx)
	if err != nil || n > 0 {
		return err
	}

	meds := []models.Medicine{
		{Name: "Paracetamol 500mg", Description: "Pain reliever and fever reducer for headaches, muscle aches and colds.", Category: "Pain Relief", Price: 5990, Stock: 120},
		{Name: "Ibuprofen 200mg", Description: "Nonsteroidal anti-inflammatory for pain, fever and inflammation.", Category: "Pain Relief", Price: 7490, Stock: 80},
		{Name: "Cetirizine 10mg", Description: "Antihistamine for hay fever, hives and other allergy symptoms.", Category: "Allergy", Price: 8990, Stock: 60},
		{Name: "Loratadine 10mg", Description: "Non-drowsy antihistamine for seasonal allergies.", Category: "Allergy", Price: 9490, Stock: 45},
		{Name: "Omeprazole 20mg", Description: "Proton pump inhibitor for heartburn and acid reflux.", Category: "Digestive", Price: 12990, Stock: 50},
		{Name: "Oral Rehydration Salts", Description: "Electrolyte replacement for dehydration from diarrhoea or vomiting.", Category: "Digestive", Price: 3490, Stock: 200},
		{Name: "Dextromethorphan Syrup", Description: "Cough suppressant for dry, irritating coughs.", Category: "Cold & Flu", Price: 11490, Stock: 35},
		{Name: "Vitamin C 1000mg", Description: "Daily immune support supplement, effervescent tablets.", Category: "Vitamins", Price: 6990, Stock: 150},
	}
	for i := range meds {
		if err := r.CreateMedicine(ctx, &meds[i]); err != nil {
			return err
		}
	}
	logging.FromContext(ctx).Info("medicines_seeded", "count", len(meds))
	return nil
}

func seedDiseases(ctx context.Context, r *repo.GormRepo) error {
	n, err := r.CountDiseases(ctx)
	if err != nil || n > 0 {
		return err
	}

	diseases := []models.Disease{
		{Name: "Common Cold", Category: "Respiratory", Description: "Viral infection of the nose and throat.", Symptoms: "Runny nose, sneezing, sore throat, mild cough", Treatment: "Rest, fluids, paracetamol for fever, cough syrup as needed", Medicines: "Paracetamol 500mg, Dextromethorphan Syrup, Vitamin C 1000mg"},
		{Name: "Seasonal Allergies", Category: "Allergy", Description: "Immune reaction to pollen, dust or animal dander.", Symptoms: "Sneezing, itchy eyes, nasal congestion", Treatment: "Avoid triggers, daily antihistamine during the season", Medicines: "Cetirizine 10mg, Loratadine 10mg"},
		{Name: "Tension Headache", Category: "Neurological", Description: "Mild to moderate band-like head pain, often stress related.", Symptoms: "Dull aching head pain, tightness across the forehead", Treatment: "Rest, hydration, over-the-counter analgesics", Medicines: "Paracetamol 500mg, Ibuprofen 200mg"},
		{Name: "Acid Reflux", Category: "Digestive", Description: "Stomach acid flowing back into the oesophagus.", Symptoms: "Heartburn, regurgitation, sour taste", Treatment: "Smaller meals, avoid late eating, acid suppression", Medicines: "Omeprazole 20mg"},
		{Name: "Acute Diarrhoea", Category: "Digestive", Description: "Loose or watery stools, usually from infection or food.", Symptoms: "Frequent loose stools, cramps, risk of dehydration", Treatment: "Oral rehydration, light diet, seek care if persistent", Medicines: "Oral Rehydration Salts"},
		{Name: "Influenza", Category: "Respiratory", Description: "Contagious viral infection with sudden onset.", Symptoms: "Fever, body aches, fatigue, dry cough", Treatment: "Rest, fluids, fever control, medical care for high-risk patients", Medicines: "Paracetamol 500mg, Ibuprofen 200mg, Vitamin C 1000mg"},
	}
	for i := range diseases {
		if err := r.CreateDisease(ctx, &diseases[i]); err != nil {
			return err
		}
	}
	logging.FromContext(ctx).Info("diseases_seeded", "count", len(diseases))
	return nil
}
